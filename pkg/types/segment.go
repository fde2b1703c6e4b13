// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SegmentKind tags one element of an expanded document body.
type SegmentKind string

const (
	// SegmentProse is a run of ordinary body text.
	SegmentProse SegmentKind = "prose"

	// SegmentCards is a group of consecutive embedded card tags.
	SegmentCards SegmentKind = "cards"
)

// Segment is one element of the ordered sequence the body expander
// produces. Exactly one of Text or Cards is meaningful, selected by Kind.
type Segment struct {
	Kind  SegmentKind `json:"kind" yaml:"kind"`
	Text  string      `json:"text,omitempty" yaml:"text,omitempty"`
	Cards []Card      `json:"cards,omitempty" yaml:"cards,omitempty"`
}

// Prose constructs a prose segment.
func Prose(text string) Segment {
	return Segment{Kind: SegmentProse, Text: text}
}

// CardGroup constructs a card-group segment.
func CardGroup(cards []Card) Segment {
	return Segment{Kind: SegmentCards, Cards: cards}
}

// Card is one embedded rich-card placeholder extracted from a document
// body. Formula is free text, passed through verbatim to the card's
// display. Delay is a presentation hint only.
type Card struct {
	// Tier is the card's tier label, >= 1. Defaults to 1.
	Tier int `json:"tier" yaml:"tier"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Formula     string `json:"formula" yaml:"formula"`

	// Delay is an animation delay hint in milliseconds, >= 0. Defaults to 0.
	Delay int `json:"delay" yaml:"delay"`
}
