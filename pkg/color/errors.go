// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package color

import (
	"errors"
	"fmt"
)

// ErrNoTint is returned by Tint when no tint has been set.
var ErrNoTint = errors.New("color: tint not set")

// ParseError reports a hex color string that does not match the
// accepted #[aa]rrggbb grammar.
type ParseError struct {
	// Input is the rejected string, verbatim.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("color: cannot parse %q: %s", e.Input, e.Reason)
}

// VariantError reports a payload accessor called on a Color holding a
// different variant. This is a caller mistake, not a transient
// failure; there is nothing to retry.
type VariantError struct {
	// Requested is the variant the accessor asked for.
	Requested Type

	// Actual is the variant the color holds.
	Actual Type
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("color: %s payload requested but color holds %s", e.Requested, e.Actual)
}
