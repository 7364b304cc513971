// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package secrets defines the kinds of account fields: generated passwords,
// passphrases, PINs, security-question answers, mixed-class passwords,
// synthetic birth dates and plain literals. The set of kinds is closed; Build
// maps a field spec onto one of them through a fixed registry.
package secrets

import (
	"github.com/KenKundert/avendesora-sub000/internal/engine"
	"github.com/KenKundert/avendesora-sub000/internal/security"
)

// Kind names a field variant.
type Kind string

const (
	KindPassword   Kind = "password"
	KindPassphrase Kind = "passphrase"
	KindPIN        Kind = "pin"
	KindQuestion   Kind = "question"
	KindMixed      Kind = "mixed"
	KindBirthDate  Kind = "birthdate"
	KindLiteral    Kind = "literal"
)

// Generator produces the value of one account field.
type Generator interface {
	Kind() Kind
	// Generate renders the value. id carries the field name, account and
	// master seed; generators apply their own overrides on top.
	Generate(e engine.Engine, id engine.Identity) (string, error)
}

// Describer is implemented by generators that carry a human-readable
// prompt alongside their value, such as security questions.
type Describer interface {
	Describe() string
}

// Overrides replace parts of the identity a field is derived from.
type Overrides struct {
	Name    string // replaces the field name
	Version string
	Master  security.Secret // replaces the account's master seed
}

func (o Overrides) apply(id engine.Identity) engine.Identity {
	if o.Name != "" {
		id.Name = o.Name
	}
	if !o.Master.Empty() {
		id.MasterSeed = o.Master.Reveal()
	}
	id.Version = o.Version
	return id
}

// Password is a fixed-length string of characters.
type Password struct {
	Overrides
	Length   int
	Alphabet []string
	Sep      string
	Prefix   string
	Suffix   string
}

func (p Password) Kind() Kind { return KindPassword }

func (p Password) Generate(e engine.Engine, id engine.Identity) (string, error) {
	s, err := e.Scalar(p.apply(id), p.Length, p.Alphabet, p.Sep)
	if err != nil {
		return "", err
	}
	return p.Prefix + s + p.Suffix, nil
}

// Passphrase is a sequence of words. It shares everything with Password
// except its defaults.
type Passphrase struct {
	Password
}

func (p Passphrase) Kind() Kind { return KindPassphrase }

// PIN is a short numeric code.
type PIN struct {
	Password
}

func (p PIN) Kind() Kind { return KindPIN }

// Question answers a security question with a few random words. The
// question text stands in for the field name unless a name is given, so
// each question gets its own answer.
type Question struct {
	Password
	Question string
}

func (q Question) Kind() Kind { return KindQuestion }

func (q Question) Describe() string { return q.Question }

func (q Question) Generate(e engine.Engine, id engine.Identity) (string, error) {
	p := q.Password
	if p.Name == "" {
		p.Name = q.Question
	}
	return p.Generate(e, id)
}

// Mixed is a password that contains minimum counts of several character
// classes.
type Mixed struct {
	Overrides
	Length       int
	Default      []string
	Requirements []engine.Requirement
}

func (m Mixed) Kind() Kind { return KindMixed }

func (m Mixed) Generate(e engine.Engine, id engine.Identity) (string, error) {
	return e.Composite(m.apply(id), m.Length, m.Default, m.Requirements)
}

// BirthDate is a plausible date of birth for someone between MinAge and
// MaxAge years old in Year.
type BirthDate struct {
	Overrides
	Year   int
	MinAge int
	MaxAge int
	Format string
}

func (b BirthDate) Kind() Kind { return KindBirthDate }

func (b BirthDate) Generate(e engine.Engine, id engine.Identity) (string, error) {
	return e.Date(b.apply(id), b.Year, b.MinAge, b.MaxAge, b.Format)
}

// Literal is a value stored verbatim in the account file.
type Literal struct {
	Value string
}

func (l Literal) Kind() Kind { return KindLiteral }

func (l Literal) Generate(engine.Engine, engine.Identity) (string, error) { return l.Value, nil }

// Generated reports whether g derives its value from the master seed.
func Generated(g Generator) bool {
	return g.Kind() != KindLiteral
}
