// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package body

import (
	"errors"
	"fmt"
	"strings"

	"github.com/platx-ai/page-engine/pkg/types"
)

// errNotACardTag means the "<" did not open anything resembling a card
// tag (lowercase HTML, comparison operator, stray bracket). It is not
// worth a diagnostic.
var errNotACardTag = errors.New("not a card tag")

// parseCardTag parses a card tag at the start of s, which must begin
// with '<'. It returns the card, the number of bytes consumed, and an
// error when s does not hold a well-formed card tag. Tag names are
// capitalized identifiers ending in "Card"; the tag body of a non-self-
// closing tag is discarded.
func parseCardTag(s string) (types.Card, int, error) {
	card := types.Card{Tier: 1}

	i := 1 // past '<'
	if i >= len(s) || !isNameStart(s[i]) {
		return card, 0, errNotACardTag
	}

	start := i
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	name := s[start:i]
	if !strings.HasSuffix(name, "Card") {
		return card, 0, errNotACardTag
	}

	seen := map[string]bool{}
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return card, 0, fmt.Errorf("tag %s: unterminated", name)
		}

		// Self-closing end.
		if strings.HasPrefix(s[i:], "/>") {
			return card, i + 2, nil
		}

		// Open tag: skip the ignored body and require a matching end tag.
		if s[i] == '>' {
			closing := "</" + name + ">"
			rest := s[i+1:]
			idx := strings.Index(rest, closing)
			if idx < 0 {
				return card, 0, fmt.Errorf("tag %s: missing closing tag", name)
			}
			return card, i + 1 + idx + len(closing), nil
		}

		key, value, width, err := parseAttr(s[i:])
		if err != nil {
			return card, 0, fmt.Errorf("tag %s: %w", name, err)
		}
		i += width

		if seen[key] {
			return card, 0, fmt.Errorf("tag %s: duplicate attribute %q", name, key)
		}
		seen[key] = true

		switch key {
		case "tier":
			card.Tier = parseTier(value)
		case "title":
			card.Title = value
		case "description":
			card.Description = value
		case "formula":
			// Free text; may hold mathematical notation. Passed through
			// verbatim to the card's display.
			card.Formula = value
		case "delay":
			card.Delay = parseDelay(value)
		default:
			// Unknown attributes are accepted and dropped.
		}
	}
}

// parseAttr parses one key="value" attribute at the start of s.
func parseAttr(s string) (key, value string, width int, err error) {
	i := 0
	for i < len(s) && (isNameByte(s[i]) || s[i] == '-') {
		i++
	}
	if i == 0 {
		return "", "", 0, fmt.Errorf("unexpected character %q", s[0])
	}
	key = s[:i]

	if i >= len(s) || s[i] != '=' {
		return "", "", 0, fmt.Errorf("attribute %q: missing '='", key)
	}
	i++

	if i >= len(s) || s[i] != '"' {
		return "", "", 0, fmt.Errorf("attribute %q: value not quoted", key)
	}
	i++

	end := strings.IndexByte(s[i:], '"')
	if end < 0 {
		return "", "", 0, fmt.Errorf("attribute %q: unterminated value", key)
	}

	return key, s[i : i+end], i + end + 1, nil
}
