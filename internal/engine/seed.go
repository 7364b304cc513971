// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"strings"
)

// Identity is the part of a request that selects the digest.
type Identity struct {
	Name       string // field identifier, usually the field's own name
	Account    string
	MasterSeed string
	Version    string
}

// Key concatenates the identity in the fixed order name, account, master
// seed, version. No separator is inserted, so "ab"+"c" and "a"+"bc" produce
// the same key; account files are expected to keep names distinct enough
// that this boundary ambiguity does not arise in practice.
func (id Identity) Key() string {
	var b strings.Builder
	b.Grow(len(id.Name) + len(id.Account) + len(id.MasterSeed) + len(id.Version))
	b.WriteString(id.Name)
	b.WriteString(id.Account)
	b.WriteString(id.MasterSeed)
	b.WriteString(id.Version)
	return b.String()
}

// Canonical renders a scalar identity component as a string. Strings pass
// through unchanged, nil becomes the empty string and everything else uses
// its default fmt form (so a YAML version of 2 becomes "2").
func Canonical(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
