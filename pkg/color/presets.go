// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

// Preset colors. Each factory returns a fully opaque RGB color at a
// fixed value; the canonical encodings are pinned by TestKnownColors.

// Black returns the color #ff000000.
func Black() Color { return FromRGB(RGB(0x00, 0x00, 0x00)) }

// White returns the color #ffffffff.
func White() Color { return FromRGB(RGB(0xff, 0xff, 0xff)) }

// Red returns the color #ffff0000.
func Red() Color { return FromRGB(RGB(0xff, 0x00, 0x00)) }

// DarkRed returns the color #ff8b0000.
func DarkRed() Color { return FromRGB(RGB(0x8b, 0x00, 0x00)) }

// Blue returns the color #ff00ff00.
func Blue() Color { return FromRGB(RGB(0x00, 0xff, 0x00)) }

// DarkBlue returns the color #ff008b00.
func DarkBlue() Color { return FromRGB(RGB(0x00, 0x8b, 0x00)) }

// Green returns the color #ff0000ff.
func Green() Color { return FromRGB(RGB(0x00, 0x00, 0xff)) }

// DarkGreen returns the color #ff00008b.
func DarkGreen() Color { return FromRGB(RGB(0x00, 0x00, 0x8b)) }

// Yellow returns the color #ffffff00.
func Yellow() Color { return FromRGB(RGB(0xff, 0xff, 0x00)) }

// DarkYellow returns the color #ffcccc00.
func DarkYellow() Color { return FromRGB(RGB(0xcc, 0xcc, 0x00)) }
