// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package color provides the color value types used by the weft styling
// model. A color is specified one of three ways: as a direct RGB value
// with alpha, as an index into the stylesheet's indexed palette, or as
// an index into the document theme's color scheme. The Color type is a
// closed tagged union over those three forms; only the active variant
// is accessible, and accessing the wrong one is a typed error rather
// than silently returning stale data.
//
// This package stores palette and theme indices but does not resolve
// them — resolution belongs to the stylesheet and theme owners.
package color

import "fmt"

// Type identifies which variant a Color currently holds.
type Type int

const (
	// TypeIndexed means the color is an index into the indexed palette.
	TypeIndexed Type = iota

	// TypeTheme means the color is an index into the theme color scheme.
	TypeTheme

	// TypeRGB means the color is a direct RGB value with alpha.
	TypeRGB
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeIndexed:
		return "indexed"
	case TypeTheme:
		return "theme"
	case TypeRGB:
		return "rgb"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Variant is the closed set of payload types a Color can hold:
// IndexedColor, ThemeColor, or RGBColor. No other implementations
// exist; the marker method is unexported to keep the union sealed.
type Variant interface {
	// Type returns the discriminant value for this variant.
	Type() Type

	colorVariant()
}

// Color is a color however it was specified: one variant payload plus
// two independent modifiers, an optional tint and an auto flag.
//
// The zero value is the baseline color: indexed color with index 0,
// no tint, not auto.
//
// Colors are plain values. Concurrent reads of a shared Color are
// safe; concurrent writes require external synchronization.
type Color struct {
	// variant is the active payload. nil is treated as the baseline
	// IndexedColor{} so the zero value behaves like Default().
	variant Variant

	// tint is only meaningful when hasTint is true.
	tint    float64
	hasTint bool

	// auto means the consuming application chooses the displayed
	// color; the stored variant is retained but overridden for
	// display purposes.
	auto bool
}

// New constructs a Color holding the given variant. Tint is absent and
// auto is false.
func New(v Variant) Color {
	return Color{variant: v}
}

// FromRGB constructs a Color holding an RGB payload.
func FromRGB(rgb RGBColor) Color {
	return Color{variant: rgb}
}

// FromIndexed constructs a Color holding an indexed-palette payload.
func FromIndexed(indexed IndexedColor) Color {
	return Color{variant: indexed}
}

// FromTheme constructs a Color holding a theme-scheme payload.
func FromTheme(theme ThemeColor) Color {
	return Color{variant: theme}
}

// Default returns the baseline color: indexed index 0, no tint, not
// auto. Identical to the zero value.
func Default() Color {
	return Color{}
}

// current returns the active variant, mapping the zero value to the
// baseline indexed color.
func (c Color) current() Variant {
	if c.variant == nil {
		return IndexedColor{}
	}
	return c.variant
}

// Type returns the discriminant of the active variant.
func (c Color) Type() Type {
	return c.current().Type()
}

// RGB returns the RGB payload. Returns a *VariantError if the color
// does not currently hold an RGB variant.
func (c Color) RGB() (RGBColor, error) {
	v, ok := c.current().(RGBColor)
	if !ok {
		return RGBColor{}, &VariantError{Requested: TypeRGB, Actual: c.Type()}
	}
	return v, nil
}

// Indexed returns the indexed-palette payload. Returns a
// *VariantError if the color does not currently hold an indexed
// variant.
func (c Color) Indexed() (IndexedColor, error) {
	v, ok := c.current().(IndexedColor)
	if !ok {
		return IndexedColor{}, &VariantError{Requested: TypeIndexed, Actual: c.Type()}
	}
	return v, nil
}

// Theme returns the theme-scheme payload. Returns a *VariantError if
// the color does not currently hold a theme variant.
func (c Color) Theme() (ThemeColor, error) {
	v, ok := c.current().(ThemeColor)
	if !ok {
		return ThemeColor{}, &VariantError{Requested: TypeTheme, Actual: c.Type()}
	}
	return v, nil
}

// MustRGB is like RGB but panics on a variant mismatch. Intended for
// colors known statically to be RGB, such as the preset factories.
func (c Color) MustRGB() RGBColor {
	v, err := c.RGB()
	if err != nil {
		panic(err)
	}
	return v
}

// MustIndexed is like Indexed but panics on a variant mismatch.
func (c Color) MustIndexed() IndexedColor {
	v, err := c.Indexed()
	if err != nil {
		panic(err)
	}
	return v
}

// MustTheme is like Theme but panics on a variant mismatch.
func (c Color) MustTheme() ThemeColor {
	v, err := c.Theme()
	if err != nil {
		panic(err)
	}
	return v
}

// SetVariant replaces the active payload, changing the discriminant to
// match. The tint and auto modifiers are preserved.
func (c *Color) SetVariant(v Variant) {
	c.variant = v
}

// Auto reports whether this color is marked as application-chosen.
func (c Color) Auto() bool {
	return c.auto
}

// SetAuto marks or unmarks this color as application-chosen. The
// stored variant is retained either way.
func (c *Color) SetAuto(auto bool) {
	c.auto = auto
}

// HasTint reports whether a tint has been set.
func (c Color) HasTint() bool {
	return c.hasTint
}

// Tint returns the tint value. Returns ErrNoTint if no tint has been
// set; callers should guard with HasTint.
func (c Color) Tint() (float64, error) {
	if !c.hasTint {
		return 0, ErrNoTint
	}
	return c.tint, nil
}

// SetTint sets the tint. Tints lighten or darken the base color when
// the consumer applies them; this package only stores the value.
func (c *Color) SetTint(tint float64) {
	c.tint = tint
	c.hasTint = true
}

// ClearTint removes the tint, returning the color to the no-tint
// state.
func (c *Color) ClearTint() {
	c.tint = 0
	c.hasTint = false
}

// Equal reports whether two colors are equivalent: same discriminant,
// same auto flag, same tint (including both absent), and equal payload
// of the matching variant. Colors of different variants are never
// equal, even when the underlying index or bytes coincide.
func (c Color) Equal(other Color) bool {
	if c.auto != other.auto || c.hasTint != other.hasTint {
		return false
	}
	if c.hasTint && c.tint != other.tint {
		return false
	}
	// Comparing the variant interfaces compares both the dynamic type
	// (the discriminant) and the payload fields.
	return c.current() == other.current()
}

// String returns a diagnostic representation, e.g. "rgb(#ffff0000)",
// "indexed(4) tint=0.5", "theme(1) auto".
func (c Color) String() string {
	var s string
	switch v := c.current().(type) {
	case IndexedColor:
		s = fmt.Sprintf("indexed(%d)", v.Index())
	case ThemeColor:
		s = fmt.Sprintf("theme(%d)", v.Index())
	case RGBColor:
		s = fmt.Sprintf("rgb(%s)", v.Hex())
	}
	if c.hasTint {
		s += fmt.Sprintf(" tint=%g", c.tint)
	}
	if c.auto {
		s += " auto"
	}
	return s
}
