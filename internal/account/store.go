// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package account

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/KenKundert/avendesora-sub000/internal/logging"
	"github.com/KenKundert/avendesora-sub000/internal/secrets"
	"github.com/KenKundert/avendesora-sub000/internal/security"
	"github.com/KenKundert/avendesora-sub000/internal/suggest"
)

// File is the on-disk layout of an accounts file.
type File struct {
	MasterSeed security.Secret `yaml:"master_seed,omitempty"`
	Accounts   map[string]Spec `yaml:"accounts"`
}

// Spec describes one account.
type Spec struct {
	Aliases    []string                `yaml:"aliases,omitempty"`
	MasterSeed security.Secret         `yaml:"master_seed,omitempty"`
	Default    string                  `yaml:"default,omitempty"`
	Fields     map[string]secrets.Spec `yaml:"fields"`
}

// Store holds every loaded account, indexed by name and alias.
type Store struct {
	accounts map[string]*Account
	index    map[string]string // lower-cased name or alias -> account name
}

// Load reads and parses an accounts file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read accounts file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debugf("loaded %d accounts from %s", len(s.accounts), path)
	return s, nil
}

// Parse decodes accounts from YAML. Unknown keys are rejected so a typo in a
// setting does not silently change a secret.
func Parse(data []byte) (*Store, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("invalid accounts file: %w", err)
	}
	return New(f)
}

// New builds a store from an already decoded file.
func New(f File) (*Store, error) {
	s := &Store{
		accounts: make(map[string]*Account, len(f.Accounts)),
		index:    make(map[string]string, len(f.Accounts)),
	}
	names := make([]string, 0, len(f.Accounts))
	for n := range f.Accounts {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := f.Accounts[name]
		a := &Account{
			Name:    name,
			Aliases: spec.Aliases,
			Default: spec.Default,
			seed:    spec.MasterSeed,
			fields:  make(map[string]fieldEntry, len(spec.Fields)),
		}
		if a.seed.Empty() {
			a.seed = security.FromBytes(f.MasterSeed)
		}
		for fname, fspec := range spec.Fields {
			g, err := secrets.Build(fspec)
			if err != nil {
				return nil, fmt.Errorf("account %s, field %s: %w", name, fname, err)
			}
			a.fields[fname] = fieldEntry{gen: g, ownSeed: !fspec.Master.Empty()}
		}
		if a.Default != "" {
			if _, ok := a.fields[a.Default]; !ok {
				return nil, fmt.Errorf("account %s: default %w %q", name, ErrUnknownField, a.Default)
			}
		}
		for _, key := range append([]string{name}, spec.Aliases...) {
			k := strings.ToLower(key)
			if other, dup := s.index[k]; dup {
				return nil, fmt.Errorf("account %s: name %q already used by account %s", name, key, other)
			}
			s.index[k] = name
		}
		s.accounts[name] = a
	}
	return s, nil
}

// Names returns account names, sorted.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.accounts))
	for n := range s.accounts {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Accounts returns every account ordered by name.
func (s *Store) Accounts() []*Account {
	out := make([]*Account, 0, len(s.accounts))
	for _, n := range s.Names() {
		out = append(out, s.accounts[n])
	}
	return out
}

// Find resolves an account by name or alias, ignoring case.
func (s *Store) Find(name string) (*Account, error) {
	if n, ok := s.index[strings.ToLower(name)]; ok {
		return s.accounts[n], nil
	}
	keys := make([]string, 0, len(s.index))
	for k := range s.index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return nil, fmt.Errorf("%w %q%s", ErrUnknownAccount, name, suggest.Hint(name, keys))
}

// NeedsSeed reports whether some account lacks a master seed but has fields
// that need one.
func (s *Store) NeedsSeed() bool {
	for _, a := range s.accounts {
		if !a.HasSeed() && a.NeedsSeed() {
			return true
		}
	}
	return false
}

// SetFallbackSeed gives seed to every account that has none of its own.
func (s *Store) SetFallbackSeed(seed security.Secret) {
	for _, a := range s.accounts {
		if !a.HasSeed() {
			a.seed = security.FromBytes(seed)
		}
	}
}

// Wipe zeroes every master seed held by the store.
func (s *Store) Wipe() {
	for _, a := range s.accounts {
		a.Wipe()
	}
}
