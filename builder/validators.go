// SPDX-License-Identifier: MIT

package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: size must be ≥ <min>, got <got>: builder: invalid size"
// otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "size must be ≥ %d, got %d: %w", min, got, ErrBadSize)
	}

	return nil
}
