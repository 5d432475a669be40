// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

import "github.com/teradata-labs/weft/internal/hashutil"

// Hash returns a deterministic hash over exactly the fields Equal
// compares, combined in a fixed order: discriminant, auto flag, tint
// if present, then the active variant's fields. Equal colors always
// hash equal. Any field added to Equal must be folded in here at the
// same position.
func (c Color) Hash() uint64 {
	// The discriminant goes first so variants sharing an underlying
	// value (theme 1 vs indexed 1) cannot collide structurally.
	seed := hashutil.Combine(0, uint64(c.Type()))
	seed = hashutil.CombineBool(seed, c.auto)

	if c.hasTint {
		seed = hashutil.CombineFloat64(seed, c.tint)
	}

	switch v := c.current().(type) {
	case IndexedColor:
		seed = hashutil.Combine(seed, uint64(v.Index()))
	case ThemeColor:
		seed = hashutil.Combine(seed, uint64(v.Index()))
	case RGBColor:
		seed = hashutil.Combine(seed, uint64(v.Red()))
		seed = hashutil.Combine(seed, uint64(v.Green()))
		seed = hashutil.Combine(seed, uint64(v.Blue()))
		seed = hashutil.Combine(seed, uint64(v.Alpha()))
	}

	return seed
}
