// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package account loads account definitions and resolves the identity each
// field's secret is derived from.
package account // import "github.com/KenKundert/avendesora-sub000/internal/account"

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/KenKundert/avendesora-sub000/internal/engine"
	"github.com/KenKundert/avendesora-sub000/internal/secrets"
	"github.com/KenKundert/avendesora-sub000/internal/security"
	"github.com/KenKundert/avendesora-sub000/internal/suggest"
)

var (
	ErrUnknownAccount = errors.New("unknown account")
	ErrUnknownField   = errors.New("unknown field")
	ErrNoMasterSeed   = errors.New("no master seed available")
)

// Account is one loaded account with its field generators.
type Account struct {
	Name    string
	Aliases []string
	Default string

	seed   security.Secret
	fields map[string]fieldEntry
}

type fieldEntry struct {
	gen     secrets.Generator
	ownSeed bool // the field sets its own master seed
}

// FieldNames returns the account's fields, sorted.
func (a *Account) FieldNames() []string {
	out := make([]string, 0, len(a.fields))
	for n := range a.fields {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Field returns the generator of the named field.
func (a *Account) Field(name string) (secrets.Generator, error) {
	if f, ok := a.fields[name]; ok {
		return f.gen, nil
	}
	return nil, fmt.Errorf("%w %q in account %s%s", ErrUnknownField, name, a.Name, suggest.Hint(name, a.FieldNames()))
}

// HasSeed reports whether the account resolved a master seed.
func (a *Account) HasSeed() bool { return !a.seed.Empty() }

// NeedsSeed reports whether any field derives from the master seed.
func (a *Account) NeedsSeed() bool {
	for _, f := range a.fields {
		if secrets.Generated(f.gen) && !f.ownSeed {
			return true
		}
	}
	return false
}

// FieldNeedsSeed reports whether generating field requires the account's
// master seed.
func (a *Account) FieldNeedsSeed(field string) bool {
	f, ok := a.fields[field]
	return ok && secrets.Generated(f.gen) && !f.ownSeed
}

// DefaultField picks the field shown when none is named: the account's own
// default, then fallback if the account has it, then the only generated
// field if there is exactly one.
func (a *Account) DefaultField(fallback string) (string, error) {
	if a.Default != "" {
		return a.Default, nil
	}
	if _, ok := a.fields[fallback]; ok && fallback != "" {
		return fallback, nil
	}
	var only string
	for _, n := range a.FieldNames() {
		if secrets.Generated(a.fields[n].gen) {
			if only != "" {
				return "", fmt.Errorf("account %s has several fields and no default; name one of: %s", a.Name, strings.Join(a.FieldNames(), ", "))
			}
			only = n
		}
	}
	if only == "" {
		return "", fmt.Errorf("account %s has no generated fields", a.Name)
	}
	return only, nil
}

// Identity is the base identity of a field before per-field overrides.
func (a *Account) Identity(field string) engine.Identity {
	return engine.Identity{Name: field, Account: a.Name, MasterSeed: a.seed.Reveal()}
}

// Value generates the named field.
func (a *Account) Value(e engine.Engine, field string) (string, error) {
	g, err := a.Field(field)
	if err != nil {
		return "", err
	}
	if a.FieldNeedsSeed(field) && !a.HasSeed() {
		return "", fmt.Errorf("%w for account %s", ErrNoMasterSeed, a.Name)
	}
	v, err := g.Generate(e, a.Identity(field))
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", a.Name, field, err)
	}
	return v, nil
}

// Wipe zeroes the account's master seed.
func (a *Account) Wipe() { a.seed.Zero() }

// ArchiveKey derives a MAC key for fingerprinting this account's values. It
// depends on the master seed so fingerprints of short secrets such as PINs
// cannot be brute-forced from an archive alone.
func (a *Account) ArchiveKey() []byte {
	k := blake2b.Sum256(append([]byte("archive:"), a.seed...))
	return k[:]
}
