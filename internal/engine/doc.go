// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package engine derives secrets from a master seed instead of storing them.
//
// A request identity (field name, account name, master seed, version) is
// concatenated into a key, hashed into a 512-bit digest and read as a big
// unsigned integer. That integer is the bit pool: every symbol of the
// generated secret is drawn from it with a modulo followed by a fixed-width
// right shift. The same identity always yields the same pool and therefore
// the same secret.
//
// The engine performs no I/O and keeps no state between requests, so
// independent requests may be evaluated concurrently without locking.
package engine // import "github.com/KenKundert/avendesora-sub000/internal/engine"
