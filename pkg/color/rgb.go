// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGBColor is a direct color value: red, green, blue, and alpha, one
// byte each. All four channels are always present; an RGBColor
// constructed without an explicit alpha is fully opaque.
type RGBColor struct {
	// channels holds red, green, blue, alpha in that order.
	channels [4]byte
}

// RGB constructs a fully opaque RGBColor from red, green, and blue
// bytes.
func RGB(r, g, b byte) RGBColor {
	return RGBA(r, g, b, 0xff)
}

// RGBA constructs an RGBColor from red, green, blue, and alpha bytes.
func RGBA(r, g, b, a byte) RGBColor {
	return RGBColor{channels: [4]byte{r, g, b, a}}
}

// Parse decodes a hex color string of the form #[aa]rrggbb. The
// leading '#' is optional and hex digits may be either case. Six
// digits are red, green, blue with alpha defaulting to 0xff; eight
// digits are alpha, red, green, blue in that order. Anything else is
// a *ParseError.
func Parse(s string) (RGBColor, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return RGBColor{}, &ParseError{Input: s, Reason: "want 6 or 8 hex digits"}
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return RGBColor{}, &ParseError{Input: s, Reason: "invalid hex digit"}
	}
	if len(raw) == 3 {
		return RGBA(raw[0], raw[1], raw[2], 0xff), nil
	}
	return RGBA(raw[1], raw[2], raw[3], raw[0]), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// string literals.
func MustParse(s string) RGBColor {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical encoding of this color: '#' followed by
// eight lowercase hex digits, alpha first, regardless of how the
// value was constructed. Parse(c.Hex()) always reproduces c.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		c.channels[3], c.channels[0], c.channels[1], c.channels[2])
}

// Red returns the red channel.
func (c RGBColor) Red() byte { return c.channels[0] }

// Green returns the green channel.
func (c RGBColor) Green() byte { return c.channels[1] }

// Blue returns the blue channel.
func (c RGBColor) Blue() byte { return c.channels[2] }

// Alpha returns the alpha channel. 0xff is fully opaque.
func (c RGBColor) Alpha() byte { return c.channels[3] }

// RGB returns the red, green, and blue channels in that order.
func (c RGBColor) RGB() [3]byte {
	return [3]byte{c.channels[0], c.channels[1], c.channels[2]}
}

// RGBA returns the red, green, blue, and alpha channels in that order.
func (c RGBColor) RGBA() [4]byte {
	return c.channels
}

// MarshalText implements encoding.TextMarshaler using the canonical
// hex encoding.
func (c RGBColor) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same
// grammar as Parse.
func (c *RGBColor) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type returns TypeRGB.
func (RGBColor) Type() Type { return TypeRGB }

func (RGBColor) colorVariant() {}
