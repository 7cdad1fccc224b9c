// SPDX-License-Identifier: MIT

// Package builder produces item catalogs for demonstrations, tests and
// benchmarks, using "functional-options"-style configuration so fixtures are
// reproducible and easy to tweak.
//
// The package offers the following key components:
//
//   - Fixtures:
//     – FoodMenu:          the nine-item wine/beer/…/cake menu.
//     – RandomCatalog:     n items with drawn values and costs.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, name scheme, value and cost draws.
//   - Name schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("item0","item1",…).
//   - Value/cost distributions (DrawFn implementations):
//     – ConstantDraw:      fixed value.
//     – UniformDraw:       continuous ∼U[min,max).
//     – UniformIntDraw:    integers uniform in [min,max] (the default, [1,100]).
//   - RNG streams:
//     – DeriveRand:        independent deterministic streams for parallel trials.
//
// Guarantees:
//
//   - Determinism: same seed, options and n ⇒ identical catalogs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels (ErrBadSize, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the constructor name.
package builder
