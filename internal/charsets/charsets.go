// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charsets holds the named alphabets secrets are drawn from. The
// order of symbols within an alphabet is part of every generated secret, so
// existing alphabets must never be reordered.
package charsets // import "github.com/KenKundert/avendesora-sub000/internal/charsets"

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters     = Lowercase + Uppercase
	Digits      = "0123456789"
	HexDigits   = Digits + "abcdefABCDEF"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	// Symbols is Punctuation without the quoting and escaping characters
	// that tend to break web forms and shell snippets.
	Symbols      = "!#$%&()*+,-./:;<=>?@[]^_{|}~"
	Alphanumeric = Letters + Digits
	Printable    = Alphanumeric + Punctuation
	// Ambiguous lists characters easily confused with one another.
	Ambiguous = "Il1O0"
)

// Distinguishable is Alphanumeric without Ambiguous characters.
var Distinguishable = Exclude(Alphanumeric, Ambiguous)

//go:embed words.txt
var wordFile string

var words = strings.Fields(wordFile)

// Words returns a copy of the embedded word list used for passphrases.
func Words() []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Exclude returns set with every character of remove dropped, keeping the
// original order.
func Exclude(set, remove string) string {
	var b strings.Builder
	for _, r := range set {
		if !strings.ContainsRune(remove, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Split turns a character set into a slice of single-character symbols.
func Split(set string) []string {
	out := make([]string, 0, len(set))
	for _, r := range set {
		out = append(out, string(r))
	}
	return out
}

var named = map[string]string{
	"lowercase":       Lowercase,
	"uppercase":       Uppercase,
	"letters":         Letters,
	"digits":          Digits,
	"hexdigits":       HexDigits,
	"punctuation":     Punctuation,
	"symbols":         Symbols,
	"alphanumeric":    Alphanumeric,
	"distinguishable": Distinguishable,
	"printable":       Printable,
}

// WordsName is the alphabet name that selects the word list.
const WordsName = "words"

// Lookup resolves a named alphabet into its symbols. The name is case
// insensitive.
func Lookup(name string) ([]string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == WordsName {
		return Words(), nil
	}
	set, ok := named[n]
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return Split(set), nil
}

// Names lists every alphabet Lookup accepts, sorted.
func Names() []string {
	out := make([]string, 0, len(named)+1)
	for n := range named {
		out = append(out, n)
	}
	out = append(out, WordsName)
	sort.Strings(out)
	return out
}
