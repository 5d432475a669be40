// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

// IndexedColor is an index into the stylesheet's indexed color
// palette. The index is an opaque handle here; whether it is in range
// is meaningful only to the palette owner.
type IndexedColor struct {
	index uint32
}

// NewIndexed constructs an IndexedColor pointing at the given palette
// slot.
func NewIndexed(index uint32) IndexedColor {
	return IndexedColor{index: index}
}

// Index returns the palette slot this color points to.
func (c IndexedColor) Index() uint32 {
	return c.index
}

// SetIndex repoints this color at another palette slot.
func (c *IndexedColor) SetIndex(index uint32) {
	c.index = index
}

// Type returns TypeIndexed.
func (IndexedColor) Type() Type { return TypeIndexed }

func (IndexedColor) colorVariant() {}

// ThemeColor is an index into the document theme's color scheme. It
// has the same shape as IndexedColor but is a distinct type so the two
// kinds of index cannot be confused.
type ThemeColor struct {
	index uint32
}

// NewTheme constructs a ThemeColor pointing at the given scheme slot.
func NewTheme(index uint32) ThemeColor {
	return ThemeColor{index: index}
}

// Index returns the scheme slot this color points to.
func (c ThemeColor) Index() uint32 {
	return c.index
}

// SetIndex repoints this color at another scheme slot.
func (c *ThemeColor) SetIndex(index uint32) {
	c.index = index
}

// Type returns TypeTheme.
func (ThemeColor) Type() Type { return TypeTheme }

func (ThemeColor) colorVariant() {}
