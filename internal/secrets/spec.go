// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secrets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KenKundert/avendesora-sub000/internal/charsets"
	"github.com/KenKundert/avendesora-sub000/internal/engine"
	"github.com/KenKundert/avendesora-sub000/internal/security"
	"github.com/KenKundert/avendesora-sub000/internal/suggest"
)

// Defaults applied when a spec leaves a setting out.
const (
	DefaultPasswordLength   = 12
	DefaultPassphraseLength = 4
	DefaultPINLength        = 4
	DefaultQuestionLength   = 3
	DefaultMixedLength      = 12
	DefaultMinAge           = 18
	DefaultMaxAge           = 65
)

// RequirementSpec is one entry of a mixed password's require list.
type RequirementSpec struct {
	Alphabet string `yaml:"alphabet,omitempty"`
	Symbols  string `yaml:"symbols,omitempty"`
	Count    int    `yaml:"count"`
}

// Spec is the on-disk description of a field.
type Spec struct {
	Kind      Kind              `yaml:"kind,omitempty"`
	Name      string            `yaml:"name,omitempty"`
	Version   any               `yaml:"version,omitempty"`
	Master    security.Secret   `yaml:"master,omitempty"`
	Length    *int              `yaml:"length,omitempty"`
	Alphabet  string            `yaml:"alphabet,omitempty"`
	Symbols   string            `yaml:"symbols,omitempty"`
	Words     []string          `yaml:"words,omitempty"`
	Separator *string           `yaml:"separator,omitempty"`
	Prefix    string            `yaml:"prefix,omitempty"`
	Suffix    string            `yaml:"suffix,omitempty"`
	Require   []RequirementSpec `yaml:"require,omitempty"`
	Year      int               `yaml:"year,omitempty"`
	MinAge    *int              `yaml:"min_age,omitempty"`
	MaxAge    *int              `yaml:"max_age,omitempty"`
	Format    string            `yaml:"format,omitempty"`
	Question  string            `yaml:"question,omitempty"`
	Value     string            `yaml:"value,omitempty"`
}

type builder func(Spec) (Generator, error)

var registry = map[Kind]builder{
	KindPassword:   buildPassword,
	KindPassphrase: buildPassphrase,
	KindPIN:        buildPIN,
	KindQuestion:   buildQuestion,
	KindMixed:      buildMixed,
	KindBirthDate:  buildBirthDate,
	KindLiteral:    buildLiteral,
}

// Kinds lists every registered kind, sorted.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ErrUnknownKind is returned by Build for kinds outside the registry.
var ErrUnknownKind = errors.New("unknown secret kind")

// Build turns a spec into its generator. A spec without a kind is a literal
// when it has a value and a password otherwise.
func Build(s Spec) (Generator, error) {
	kind := s.Kind
	if kind == "" {
		kind = KindPassword
		if s.Value != "" {
			kind = KindLiteral
		}
	}
	b, ok := registry[kind]
	if !ok {
		names := make([]string, 0, len(registry))
		for _, k := range Kinds() {
			names = append(names, string(k))
		}
		return nil, fmt.Errorf("%w %q%s", ErrUnknownKind, s.Kind, suggest.Hint(string(s.Kind), names))
	}
	return b(s)
}

func (s Spec) overrides() Overrides {
	return Overrides{Name: s.Name, Version: engine.Canonical(s.Version), Master: s.Master}
}

// alphabet resolves the symbols a spec draws from: explicit symbols win,
// then an explicit word list, then a named alphabet, then def.
func (s Spec) alphabet(def string) ([]string, error) {
	switch {
	case s.Symbols != "":
		return charsets.Split(s.Symbols), nil
	case len(s.Words) > 0:
		return append([]string(nil), s.Words...), nil
	case s.Alphabet != "":
		return lookupAlphabet(s.Alphabet)
	default:
		return lookupAlphabet(def)
	}
}

func lookupAlphabet(name string) ([]string, error) {
	a, err := charsets.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, suggest.Hint(name, charsets.Names()))
	}
	return a, nil
}

func orIntPtr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func (s Spec) separator(def string) string {
	if s.Separator == nil {
		return def
	}
	return *s.Separator
}

func (s Spec) scalar(length int, alphabet, sep string) (Password, error) {
	a, err := s.alphabet(alphabet)
	if err != nil {
		return Password{}, err
	}
	return Password{
		Overrides: s.overrides(),
		Length:    orIntPtr(s.Length, length),
		Alphabet:  a,
		Sep:       s.separator(sep),
		Prefix:    s.Prefix,
		Suffix:    s.Suffix,
	}, nil
}

func buildPassword(s Spec) (Generator, error) {
	p, err := s.scalar(DefaultPasswordLength, "distinguishable", "")
	if err != nil {
		return nil, err
	}
	return p, nil
}

func buildPassphrase(s Spec) (Generator, error) {
	p, err := s.scalar(DefaultPassphraseLength, charsets.WordsName, " ")
	if err != nil {
		return nil, err
	}
	return Passphrase{Password: p}, nil
}

func buildPIN(s Spec) (Generator, error) {
	p, err := s.scalar(DefaultPINLength, "digits", "")
	if err != nil {
		return nil, err
	}
	return PIN{Password: p}, nil
}

func buildQuestion(s Spec) (Generator, error) {
	if s.Question == "" {
		return nil, fmt.Errorf("%w: question text is required", engine.ErrInvalidSpec)
	}
	p, err := s.scalar(DefaultQuestionLength, charsets.WordsName, " ")
	if err != nil {
		return nil, err
	}
	return Question{Password: p, Question: s.Question}, nil
}

func buildMixed(s Spec) (Generator, error) {
	def, err := s.alphabet("alphanumeric")
	if err != nil {
		return nil, err
	}
	reqs := make([]engine.Requirement, 0, len(s.Require))
	for i, r := range s.Require {
		var a []string
		switch {
		case r.Symbols != "":
			a = charsets.Split(r.Symbols)
		case r.Alphabet != "":
			a, err = lookupAlphabet(r.Alphabet)
			if err != nil {
				return nil, fmt.Errorf("require[%d]: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("%w: require[%d] needs an alphabet or symbols", engine.ErrInvalidSpec, i)
		}
		reqs = append(reqs, engine.Requirement{Alphabet: a, Count: r.Count})
	}
	return Mixed{
		Overrides:    s.overrides(),
		Length:       orIntPtr(s.Length, DefaultMixedLength),
		Default:      def,
		Requirements: reqs,
	}, nil
}

func buildBirthDate(s Spec) (Generator, error) {
	if s.Year == 0 {
		return nil, fmt.Errorf("%w: birthdate needs an anchor year", engine.ErrInvalidSpec)
	}
	b := BirthDate{
		Overrides: s.overrides(),
		Year:      s.Year,
		MinAge:    orIntPtr(s.MinAge, DefaultMinAge),
		MaxAge:    orIntPtr(s.MaxAge, DefaultMaxAge),
		Format:    s.Format,
	}
	if _, err := engine.AgeRange(b.Year, b.MinAge, b.MaxAge); err != nil {
		return nil, err
	}
	return b, nil
}

func buildLiteral(s Spec) (Generator, error) {
	return Literal{Value: s.Value}, nil
}
