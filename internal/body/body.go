// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package body expands a document body into an ordered sequence of prose
// and card-group segments. Card tags are inline placeholders of the form
//
//	<AITierCard tier="1" title="..." description="..." formula="..." delay="0" />
//
// with attributes in any order, self-closed or closed by a matching end
// tag whose inner content is ignored. A candidate tag that fails the
// grammar is kept as ordinary prose; the failure is logged, never raised.
package body

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/platx-ai/page-engine/pkg/types"
)

// Expander scans document bodies for embedded card tags.
type Expander struct {
	log *zap.Logger
}

// New returns an Expander. A nil logger disables diagnostics.
func New(log *zap.Logger) *Expander {
	if log == nil {
		log = zap.NewNop()
	}
	return &Expander{log: log}
}

// Expand splits raw into an ordered sequence of segments. Consecutive
// card tags separated only by whitespace merge into one card group; any
// non-whitespace text between two tags starts a new prose segment. The
// output preserves the source order of prose and cards exactly.
func (e *Expander) Expand(raw string) []types.Segment {
	var (
		segs  []types.Segment
		prose strings.Builder
		cards []types.Card
	)

	// Pending cards always precede pending prose in source order, so a
	// flush emits the card group first.
	flush := func() {
		if len(cards) > 0 {
			segs = append(segs, types.CardGroup(cards))
			cards = nil
		}
		if text := strings.TrimSpace(prose.String()); text != "" {
			segs = append(segs, types.Prose(text))
		}
		prose.Reset()
	}

	i := 0
	for i < len(raw) {
		idx := strings.IndexByte(raw[i:], '<')
		if idx < 0 {
			prose.WriteString(raw[i:])
			break
		}

		pre := raw[i : i+idx]
		card, width, err := parseCardTag(raw[i+idx:])
		if err != nil {
			if err != errNotACardTag {
				e.log.Debug("card tag rejected, keeping as prose",
					zap.String("reason", err.Error()),
					zap.Int("offset", i+idx))
			}
			prose.WriteString(pre)
			prose.WriteByte('<')
			i += idx + 1
			continue
		}

		if len(cards) > 0 && strings.TrimSpace(prose.String()+pre) == "" {
			// Only whitespace since the previous card: same group.
			prose.Reset()
		} else {
			prose.WriteString(pre)
			flush()
		}

		cards = append(cards, card)
		i += idx + width
	}

	flush()
	return segs
}

// parseTier converts a tier attribute, falling back to the default of 1
// when the value is missing, non-numeric, or below 1.
func parseTier(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseDelay converts a delay attribute, falling back to 0 when the
// value is missing, non-numeric, or negative.
func parseDelay(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isNameStart(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isNameByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}
