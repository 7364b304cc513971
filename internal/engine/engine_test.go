// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"
)

func chars(s string) []string { return strings.Split(s, "") }

var alphanumeric = chars(lower + upper + digits)

func bank(name string) Identity {
	return Identity{Name: name, Account: "bank", MasterSeed: "dux"}
}

func TestIdentityKey(t *testing.T) {
	id := Identity{Name: "passcode", Account: "bank", MasterSeed: "dux", Version: "2"}
	assert.Equal(t, "passcodebankdux2", id.Key())
	assert.Equal(t, "", Identity{}.Key())
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "", Canonical(nil))
	assert.Equal(t, "abc", Canonical("abc"))
	assert.Equal(t, "2", Canonical(2))
	assert.Equal(t, "2", Canonical(uint64(2)))
	assert.Equal(t, "1.5", Canonical(1.5))
	assert.Equal(t, "true", Canonical(true))
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, SHA512, a)

	a, err = ParseAlgorithm(" SHA3-512 ")
	require.NoError(t, err)
	assert.Equal(t, SHA3_512, a)

	_, err = ParseAlgorithm("md5")
	require.Error(t, err)
}

func TestAlgorithmSumLength(t *testing.T) {
	for _, a := range Algorithms() {
		assert.Len(t, a.Sum("dux"), 64, string(a))
	}
	assert.Equal(t, SHA512.Sum("dux"), Algorithm("").Sum("dux"))
}

func TestUnknownAlgorithmRejected(t *testing.T) {
	assert.True(t, Algorithm("").Known())
	assert.False(t, Algorithm("bogus").Known())

	e := New("bogus")
	_, err := e.Pool(bank("passcode"))
	require.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.Scalar(bank("passcode"), 16, alphanumeric, "")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.Composite(bank("passcode"), 12, alphanumeric, nil)
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.DateTime(bank("birthdate"), DateRange{FirstYear: 1960, LastYear: 2000})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestScalarGoldenVectors(t *testing.T) {
	tests := []struct {
		name   string
		alg    Algorithm
		id     Identity
		length int
		alpha  []string
		sep    string
		expect string
	}{
		{"sha512_alphanumeric", SHA512, bank("passcode"), 16, alphanumeric, "", "bqDy7KK1EgjvoO63"},
		{"sha3_alphanumeric", SHA3_512, bank("passcode"), 16, alphanumeric, "", "NteF6W3N9tK1sMYd"},
		{"blake2b_alphanumeric", BLAKE2b512, bank("passcode"), 16, alphanumeric, "", "wsj6qMraHbuOLT1q"},
		{"versioned", SHA512, Identity{Name: "passcode", Account: "bank", MasterSeed: "dux", Version: "1"}, 16, alphanumeric, "", "Z3zInXUjeHHzKv9H"},
		{"pin", SHA512, bank("pin"), 4, chars(digits), "", "5837"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.alg).Scalar(tt.id, tt.length, tt.alpha, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestScalarDeterministic(t *testing.T) {
	e := Engine{}
	first, err := e.Scalar(bank("passcode"), 20, alphanumeric, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Scalar(bank("passcode"), 20, alphanumeric, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScalarSensitivity(t *testing.T) {
	base := Identity{Name: "passcode", Account: "bank", MasterSeed: "dux", Version: ""}
	variants := map[string]Identity{
		"name":    {Name: "passcodes", Account: "bank", MasterSeed: "dux"},
		"account": {Name: "passcode", Account: "bank2", MasterSeed: "dux"},
		"seed":    {Name: "passcode", Account: "bank", MasterSeed: "duX"},
		"version": {Name: "passcode", Account: "bank", MasterSeed: "dux", Version: "1"},
	}
	e := Engine{}
	want, err := e.Scalar(base, 16, alphanumeric, "")
	require.NoError(t, err)
	for field, id := range variants {
		got, err := e.Scalar(id, 16, alphanumeric, "")
		require.NoError(t, err)
		assert.NotEqual(t, want, got, "changing %s must change the secret", field)
	}
}

func TestScalarMembershipAndLength(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	e := Engine{}
	for i := 0; i < 50; i++ {
		id := Identity{Name: "f", Account: fmt.Sprintf("acct%d", i), MasterSeed: "seed"}

		pw, err := e.Scalar(id, 24, alphanumeric, "")
		require.NoError(t, err)
		require.Len(t, pw, 24)
		for _, r := range pw {
			assert.Contains(t, lower+upper+digits, string(r))
		}

		phrase, err := e.Scalar(id, 5, words, " ")
		require.NoError(t, err)
		parts := strings.Split(phrase, " ")
		require.Len(t, parts, 5)
		for _, w := range parts {
			assert.Contains(t, words, w)
		}
	}
}

func TestScalarInvalidSpec(t *testing.T) {
	e := Engine{}
	_, err := e.Scalar(bank("x"), 0, alphanumeric, "")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.Scalar(bank("x"), -3, alphanumeric, "")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.Scalar(bank("x"), 4, []string{"a"}, "")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = e.Scalar(bank("x"), 4, nil, "")
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestScalarExhaustionBoundary(t *testing.T) {
	tests := []struct {
		name     string
		alpha    []string
		capacity int
	}{
		{"alphanumeric", alphanumeric, 85},
		{"digits", chars(digits), 127},
	}
	e := Engine{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Scalar(bank("passcode"), tt.capacity, tt.alpha, "")
			require.NoError(t, err)

			_, err = e.Scalar(bank("passcode"), tt.capacity+1, tt.alpha, "")
			require.ErrorIs(t, err, ErrSecretExhausted)
			assert.False(t, errors.Is(err, ErrInvalidSpec))
		})
	}
}

func TestPoolExhaustionIsTerminal(t *testing.T) {
	p := NewPool([]byte{0x05})
	i, err := p.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, 1, i) // 5 mod 2, pool becomes 2
	i, err = p.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, 0, i) // pool becomes 1
	i, err = p.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, 1, i) // pool becomes 0

	_, err = p.Draw(3)
	require.ErrorIs(t, err, ErrSecretExhausted)
	assert.True(t, p.Exhausted())
	// 0 >= radix-1 would succeed for radix 1 on a fresh pool, but not here.
	_, err = p.Draw(1)
	assert.ErrorIs(t, err, ErrSecretExhausted)
	assert.Equal(t, 3, p.Draws())
}

func TestPoolDrawShiftsBitLength(t *testing.T) {
	p := NewPool([]byte{0xff, 0xff})
	require.Equal(t, 16, p.BitLen())
	_, err := p.Draw(62) // bit length of 61 is 6
	require.NoError(t, err)
	assert.Equal(t, 10, p.BitLen())
	_, err = p.Draw(1) // radix 1 still consumes one bit
	require.NoError(t, err)
	assert.Equal(t, 9, p.BitLen())
}

func TestPoolRejectsBadRadix(t *testing.T) {
	p := NewPool([]byte{0xff})
	_, err := p.Draw(0)
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.False(t, p.Exhausted())
}

func TestPoolWipe(t *testing.T) {
	p, err := Engine{}.Pool(bank("passcode"))
	require.NoError(t, err)
	require.Greater(t, p.BitLen(), 500)
	p.Wipe()
	assert.Equal(t, 0, p.BitLen())
	_, err = p.Draw(2)
	assert.ErrorIs(t, err, ErrSecretExhausted)
}

func TestCompositeGolden(t *testing.T) {
	reqs := []Requirement{
		{Alphabet: chars(lower), Count: 2},
		{Alphabet: chars(upper), Count: 2},
		{Alphabet: chars(digits), Count: 2},
	}
	got, err := Engine{}.Composite(bank("mixed"), 12, alphanumeric, reqs)
	require.NoError(t, err)
	assert.Equal(t, "13xLRY6vU1hl", got)
}

func TestCompositeConstraints(t *testing.T) {
	reqs := []Requirement{
		{Alphabet: chars(lower), Count: 2},
		{Alphabet: chars(upper), Count: 2},
		{Alphabet: chars(digits), Count: 2},
	}
	count := func(s, class string) int {
		n := 0
		for _, r := range s {
			if strings.ContainsRune(class, r) {
				n++
			}
		}
		return n
	}
	e := Engine{}
	for i := 0; i < 100; i++ {
		id := Identity{Name: "mixed", Account: fmt.Sprintf("acct%d", i), MasterSeed: "dux"}
		got, err := e.Composite(id, 12, alphanumeric, reqs)
		require.NoError(t, err)
		require.Len(t, got, 12)
		assert.GreaterOrEqual(t, count(got, lower), 2, got)
		assert.GreaterOrEqual(t, count(got, upper), 2, got)
		assert.GreaterOrEqual(t, count(got, digits), 2, got)

		again, err := e.Composite(id, 12, alphanumeric, reqs)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestCompositeOnlyRequirements(t *testing.T) {
	reqs := []Requirement{{Alphabet: chars("!@#$"), Count: 3}, {Alphabet: chars(digits), Count: 3}}
	got, err := Engine{}.Composite(bank("mixed"), 6, alphanumeric, reqs)
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestCompositeInvalidSpec(t *testing.T) {
	e := Engine{}
	tests := []struct {
		name   string
		length int
		def    []string
		reqs   []Requirement
	}{
		{"too_many_required", 4, alphanumeric, []Requirement{{chars(lower), 3}, {chars(digits), 2}}},
		{"negative_count", 8, alphanumeric, []Requirement{{chars(lower), -1}}},
		{"tiny_class", 8, alphanumeric, []Requirement{{[]string{"x"}, 1}}},
		{"tiny_default", 8, []string{"x"}, nil},
		{"zero_length", 0, alphanumeric, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Composite(bank("mixed"), tt.length, tt.def, tt.reqs)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestCompositeExhaustion(t *testing.T) {
	_, err := Engine{}.Composite(bank("mixed"), 80, alphanumeric, nil)
	assert.ErrorIs(t, err, ErrSecretExhausted)
}

func TestDateGolden(t *testing.T) {
	got, err := Engine{}.Date(bank("birthdate"), 2026, 18, 65, "")
	require.NoError(t, err)
	assert.Equal(t, "1975-11-08", got)

	got, err = Engine{}.Date(bank("birthdate"), 2026, 18, 65, "%d/%m/%Y")
	require.NoError(t, err)
	assert.Equal(t, "08/11/1975", got)
}

func TestDateBounds(t *testing.T) {
	e := Engine{}
	for i := 0; i < 200; i++ {
		id := Identity{Name: "birthdate", Account: fmt.Sprintf("acct%d", i), MasterSeed: "dux"}
		got, err := e.Date(id, 2026, 18, 65, DefaultDateFormat)
		require.NoError(t, err)
		d, err := time.Parse("2006-01-02", got)
		require.NoError(t, err, "rendered date must be a valid calendar date")
		assert.GreaterOrEqual(t, d.Year(), 2026-65)
		assert.LessOrEqual(t, d.Year(), 2026-18)
	}
}

func TestDateLeapYear(t *testing.T) {
	e := Engine{}
	seenFeb29 := false
	for i := 0; i < 2000 && !seenFeb29; i++ {
		id := Identity{Name: "birthdate", Account: fmt.Sprintf("acct%d", i), MasterSeed: "dux"}
		d, err := e.DateTime(id, DateRange{FirstYear: 2000, LastYear: 2000})
		require.NoError(t, err)
		require.Equal(t, 2000, d.Year())
		if d.Month() == time.February && d.Day() == 29 {
			seenFeb29 = true
		}
	}
	assert.True(t, seenFeb29, "leap day should be reachable in a leap year")

	for i := 0; i < 400; i++ {
		id := Identity{Name: "birthdate", Account: fmt.Sprintf("acct%d", i), MasterSeed: "dux"}
		d, err := e.DateTime(id, DateRange{FirstYear: 1900, LastYear: 1900})
		require.NoError(t, err)
		assert.Equal(t, 1900, d.Year(), "1900 has 365 days, so no draw may spill into 1901")
	}
}

func TestDateInvalidRange(t *testing.T) {
	e := Engine{}
	_, err := e.Date(bank("birthdate"), 2026, 65, 18, "")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = e.Date(bank("birthdate"), 2026, -1, 18, "")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = e.DateTime(bank("birthdate"), DateRange{FirstYear: 2001, LastYear: 2000})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestConcurrentEvaluationsAreIndependent(t *testing.T) {
	e := Engine{}
	want, err := e.Scalar(bank("passcode"), 16, alphanumeric, "")
	require.NoError(t, err)

	results := make(chan string, 16)
	for i := 0; i < 16; i++ {
		go func() {
			got, err := e.Scalar(bank("passcode"), 16, alphanumeric, "")
			if err != nil {
				got = err.Error()
			}
			results <- got
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, want, <-results)
	}
}
