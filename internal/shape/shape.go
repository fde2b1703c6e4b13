// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shape classifies a document's metadata header into its
// rendering shape. Classify is the single classification implementation
// shared by the runtime renderer and the offline section generator; the
// two must never diverge.
package shape

import (
	"github.com/platx-ai/page-engine/pkg/types"
)

// Classify determines which rendering shapes apply to a metadata header.
// It is pure and deterministic: identical headers always yield identical
// results, independent of call order.
//
// Reserved fields (title, heading, description, background) are never
// classified. A field whose value is an array contributes to ArrayKeys;
// a field whose value is a nested mapping contributes to ObjectKeys.
// Nested shape is not detected beyond one level: an object that itself
// carries a features sub-array is still just an object key.
func Classify(meta types.Metadata) types.Classification {
	c := types.Classification{
		HasFeatures: meta.IsArray("features"),
		HasMetrics:  meta.IsArray("metrics"),
	}

	for _, key := range meta.Order {
		if types.ReservedFields[key] {
			continue
		}
		switch {
		case meta.IsArray(key):
			c.ArrayKeys = append(c.ArrayKeys, key)
		case meta.IsObject(key):
			c.ObjectKeys = append(c.ObjectKeys, key)
		}
	}

	return c
}
