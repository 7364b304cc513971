// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import "errors"

var (
	// ErrSecretExhausted is returned when the bit pool has too little value
	// left for another draw. Retrying with the same request always fails the
	// same way; the request has to ask for fewer or smaller symbols.
	ErrSecretExhausted = errors.New("secret exhausted: requested length exceeds the entropy of the digest")
	// ErrInvalidSpec reports a malformed request: non-positive length, an
	// alphabet with fewer than two symbols, or class requirements that do
	// not fit into the total length.
	ErrInvalidSpec = errors.New("invalid secret specification")
	// ErrInvalidRange reports inverted date bounds.
	ErrInvalidRange = errors.New("invalid date range")
)
