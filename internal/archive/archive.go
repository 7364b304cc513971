// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package archive records fingerprints of every generated value so a later
// run can report which secrets changed, for example after an accounts file
// edit or a hash algorithm switch. Only keyed BLAKE2b fingerprints are
// stored, never the values.
package archive

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"

	"github.com/KenKundert/avendesora-sub000/internal/account"
	"github.com/KenKundert/avendesora-sub000/internal/batch"
)

// FormatVersion is written into every archive.
const FormatVersion = 1

// Archive maps "account.field" to a value fingerprint.
type Archive struct {
	Version   int               `yaml:"version"`
	Created   time.Time         `yaml:"created"`
	Algorithm string            `yaml:"algorithm"`
	Entries   map[string]string `yaml:"entries"`
	// Failed lists fields that could not be generated.
	Failed []string `yaml:"failed,omitempty"`
}

// Key is the archive key of a field.
func Key(acct, field string) string { return acct + "." + field }

// Fingerprint is the hex BLAKE2b-256 MAC of value under key.
func Fingerprint(key []byte, value string) (string, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	_, _ = io.WriteString(h, value)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Build fingerprints results. Accounts are looked up in s for their
// archive keys.
func Build(s *account.Store, results []batch.Result, algorithm string, now time.Time) (*Archive, error) {
	a := &Archive{
		Version:   FormatVersion,
		Created:   now.UTC(),
		Algorithm: algorithm,
		Entries:   make(map[string]string, len(results)),
	}
	for _, r := range results {
		k := Key(r.Account, r.Field)
		if r.Err != nil {
			a.Failed = append(a.Failed, k)
			continue
		}
		acct, err := s.Find(r.Account)
		if err != nil {
			return nil, err
		}
		fp, err := Fingerprint(acct.ArchiveKey(), r.Value)
		if err != nil {
			return nil, err
		}
		a.Entries[k] = fp
	}
	sort.Strings(a.Failed)
	return a, nil
}

// Write encodes a as zstd-compressed YAML.
func (a *Archive) Write(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	data, err := yaml.Marshal(a)
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode archive: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	return zw.Close()
}

// Read decodes an archive written by Write.
func Read(r io.Reader) (*Archive, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress archive: %w", err)
	}
	var a Archive
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	if a.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported archive version %d", a.Version)
	}
	if a.Entries == nil {
		a.Entries = map[string]string{}
	}
	return &a, nil
}

// Save writes the archive to path atomically by writing to a temp file then
// renaming.
func (a *Archive) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create archive directory: %w", err)
	}
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := a.Write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Open reads the archive stored at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
