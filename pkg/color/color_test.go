// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_VariantDiscipline(t *testing.T) {
	indexed := FromIndexed(NewIndexed(1))
	require.Equal(t, TypeIndexed, indexed.Type())
	assert.False(t, indexed.Auto())

	got, err := indexed.Indexed()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.Index())

	// Repointing the payload at another palette slot.
	got.SetIndex(2)
	indexed.SetVariant(got)
	got, err = indexed.Indexed()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.Index())

	// The other two accessors must fail with a typed error, never
	// hand back a default payload.
	_, err = indexed.Theme()
	var variantErr *VariantError
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, TypeTheme, variantErr.Requested)
	assert.Equal(t, TypeIndexed, variantErr.Actual)

	_, err = indexed.RGB()
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, TypeRGB, variantErr.Requested)

	theme := FromTheme(NewTheme(3))
	require.Equal(t, TypeTheme, theme.Type())
	assert.False(t, theme.Auto())

	th, err := theme.Theme()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), th.Index())

	th.SetIndex(4)
	theme.SetVariant(th)
	th, err = theme.Theme()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), th.Index())

	_, err = theme.Indexed()
	require.ErrorAs(t, err, &variantErr)
	_, err = theme.RGB()
	require.ErrorAs(t, err, &variantErr)

	rgb := FromRGB(RGB(0x10, 0x20, 0x30))
	require.Equal(t, TypeRGB, rgb.Type())
	v, err := rgb.RGB()
	require.NoError(t, err)
	assert.Equal(t, "#ff102030", v.Hex())
	_, err = rgb.Indexed()
	require.ErrorAs(t, err, &variantErr)
	_, err = rgb.Theme()
	require.ErrorAs(t, err, &variantErr)
}

func TestColor_MustAccessors(t *testing.T) {
	rgb := FromRGB(RGB(1, 2, 3))

	assert.NotPanics(t, func() { rgb.MustRGB() })
	assert.Panics(t, func() { rgb.MustIndexed() })
	assert.Panics(t, func() { rgb.MustTheme() })

	assert.Equal(t, byte(2), rgb.MustRGB().Green())
	assert.Equal(t, uint32(7), FromIndexed(NewIndexed(7)).MustIndexed().Index())
	assert.Equal(t, uint32(9), FromTheme(NewTheme(9)).MustTheme().Index())
}

func TestColor_DefaultBaseline(t *testing.T) {
	// The documented baseline: indexed color, index 0, no tint, not
	// auto. The zero value and Default() agree.
	for _, c := range []Color{Default(), {}} {
		assert.Equal(t, TypeIndexed, c.Type())
		assert.False(t, c.Auto())
		assert.False(t, c.HasTint())

		indexed, err := c.Indexed()
		require.NoError(t, err)
		assert.Equal(t, uint32(0), indexed.Index())
	}

	assert.True(t, Default().Equal(Color{}))
	assert.True(t, Default().Equal(FromIndexed(NewIndexed(0))))
}

func TestColor_Tint(t *testing.T) {
	c := FromTheme(NewTheme(1))
	require.False(t, c.HasTint())

	_, err := c.Tint()
	require.ErrorIs(t, err, ErrNoTint)

	c.SetTint(0.5)
	require.True(t, c.HasTint())
	tint, err := c.Tint()
	require.NoError(t, err)
	assert.Equal(t, 0.5, tint)

	// Negative tints darken; they are stored verbatim.
	c.SetTint(-0.25)
	tint, err = c.Tint()
	require.NoError(t, err)
	assert.Equal(t, -0.25, tint)

	c.ClearTint()
	assert.False(t, c.HasTint())
	_, err = c.Tint()
	assert.ErrorIs(t, err, ErrNoTint)
}

func TestColor_Auto(t *testing.T) {
	c := FromRGB(RGB(0xff, 0xff, 0xff))
	require.False(t, c.Auto())

	c.SetAuto(true)
	assert.True(t, c.Auto())

	// The stored variant is retained while auto is set.
	v, err := c.RGB()
	require.NoError(t, err)
	assert.Equal(t, "#ffffffff", v.Hex())

	c.SetAuto(false)
	assert.False(t, c.Auto())
}

func TestColor_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{
			name: "same indexed",
			a:    FromIndexed(NewIndexed(1)),
			b:    FromIndexed(NewIndexed(1)),
			want: true,
		},
		{
			name: "different indexed",
			a:    FromIndexed(NewIndexed(1)),
			b:    FromIndexed(NewIndexed(2)),
			want: false,
		},
		{
			name: "variant isolation: indexed vs theme with same index",
			a:    FromIndexed(NewIndexed(1)),
			b:    FromTheme(NewTheme(1)),
			want: false,
		},
		{
			name: "same rgb",
			a:    FromRGB(MustParse("#ff112233")),
			b:    FromRGB(RGBA(0x11, 0x22, 0x33, 0xff)),
			want: true,
		},
		{
			name: "rgb differing only in alpha",
			a:    FromRGB(RGBA(0x11, 0x22, 0x33, 0xff)),
			b:    FromRGB(RGBA(0x11, 0x22, 0x33, 0x80)),
			want: false,
		},
		{
			name: "auto flag differs",
			a:    Red(),
			b:    func() Color { c := Red(); c.SetAuto(true); return c }(),
			want: false,
		},
		{
			name: "tint present vs absent",
			a:    Red(),
			b:    func() Color { c := Red(); c.SetTint(0.1); return c }(),
			want: false,
		},
		{
			name: "tint values differ",
			a:    func() Color { c := Red(); c.SetTint(0.1); return c }(),
			b:    func() Color { c := Red(); c.SetTint(0.2); return c }(),
			want: false,
		},
		{
			name: "tint values match",
			a:    func() Color { c := Red(); c.SetTint(0.1); return c }(),
			b:    func() Color { c := Red(); c.SetTint(0.1); return c }(),
			want: true,
		},
		{
			name: "cleared tint equals never-set tint",
			a:    func() Color { c := Red(); c.SetTint(0.1); c.ClearTint(); return c }(),
			b:    Red(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			// Equality is symmetric.
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestColor_SetVariantPreservesModifiers(t *testing.T) {
	c := FromIndexed(NewIndexed(3))
	c.SetTint(0.5)
	c.SetAuto(true)

	c.SetVariant(RGB(0x01, 0x02, 0x03))

	assert.Equal(t, TypeRGB, c.Type())
	assert.True(t, c.Auto())
	require.True(t, c.HasTint())
	tint, err := c.Tint()
	require.NoError(t, err)
	assert.Equal(t, 0.5, tint)
}

func TestColor_String(t *testing.T) {
	tests := []struct {
		name  string
		color func() Color
		want  string
	}{
		{
			name:  "rgb",
			color: Red,
			want:  "rgb(#ffff0000)",
		},
		{
			name:  "indexed",
			color: func() Color { return FromIndexed(NewIndexed(4)) },
			want:  "indexed(4)",
		},
		{
			name: "theme with tint",
			color: func() Color {
				c := FromTheme(NewTheme(1))
				c.SetTint(0.5)
				return c
			},
			want: "theme(1) tint=0.5",
		},
		{
			name: "auto",
			color: func() Color {
				c := FromTheme(NewTheme(2))
				c.SetAuto(true)
				return c
			},
			want: "theme(2) auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color().String())
		})
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "indexed", TypeIndexed.String())
	assert.Equal(t, "theme", TypeTheme.String())
	assert.Equal(t, "rgb", TypeRGB.String())
	assert.Equal(t, "type(42)", Type(42).String())
}
