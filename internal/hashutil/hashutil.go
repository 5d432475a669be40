// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package hashutil provides order-sensitive hash combining for value
// types whose hash must mirror their equality: fold each field that
// participates in equality into the seed, in a fixed order, and equal
// values come out with equal hashes.
package hashutil

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// golden is the 64-bit golden ratio constant used to spread combined
// values across the hash space.
const golden = 0x9e3779b97f4a7c15

// Combine folds v into seed. The operation is deliberately
// non-commutative so field order matters.
func Combine(seed, v uint64) uint64 {
	return seed ^ (v + golden + (seed << 6) + (seed >> 2))
}

// CombineBool folds a bool into seed.
func CombineBool(seed uint64, b bool) uint64 {
	if b {
		return Combine(seed, 1)
	}
	return Combine(seed, 0)
}

// CombineFloat64 folds a float64 into seed via its IEEE 754 bit
// pattern, so equal floats always fold identically.
func CombineFloat64(seed uint64, f float64) uint64 {
	return Combine(seed, math.Float64bits(f))
}

// CombineString folds a string into seed through xxhash.
func CombineString(seed uint64, s string) uint64 {
	return Combine(seed, xxhash.Sum64String(s))
}

// CombineBytes folds a byte slice into seed through xxhash.
func CombineBytes(seed uint64, b []byte) uint64 {
	return Combine(seed, xxhash.Sum64(b))
}
