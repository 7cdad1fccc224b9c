// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by catalog constructors,
// ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomCatalog is the canonical name for the RandomCatalog constructor.
	MethodRandomCatalog = "RandomCatalog"
)

//-----------------------------------------------------------------------------
// Draw Defaults
//-----------------------------------------------------------------------------

// DefaultMinDraw is the inclusive lower bound of the default value and cost draws.
const DefaultMinDraw = 1

// DefaultMaxDraw is the inclusive upper bound of the default value and cost draws.
const DefaultMaxDraw = 100

// MinCatalogSize is the smallest accepted catalog size; an empty catalog is valid.
const MinCatalogSize = 0
