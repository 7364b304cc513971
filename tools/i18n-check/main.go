// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-check compares the message IDs passed to i18n.T in the source tree
// with the locale files. IDs used in code but absent from the primary
// locale fail the check; IDs a secondary locale lacks are reported since
// those messages fall back to English.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report is the outcome of one check.
type Report struct {
	Undefined    []string            // used in code, missing from the primary locale
	Unused       []string            // defined in the primary locale, never used
	Untranslated map[string][]string // locale file -> IDs it lacks
}

// Failed reports whether the check should fail the build.
func (r Report) Failed() bool { return len(r.Undefined) > 0 }

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	r, err := Check(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-check: %v\n", err)
		os.Exit(2)
	}
	r.Print(os.Stdout)
	if r.Failed() {
		os.Exit(1)
	}
}

// Check scans root for message IDs and compares them with the locales.
func Check(root string) (Report, error) {
	used, err := usedIDs(root)
	if err != nil {
		return Report{}, err
	}
	dir := filepath.Join(root, localesDir)
	primary, err := localeIDs(filepath.Join(dir, primaryLocale))
	if err != nil {
		return Report{}, err
	}

	r := Report{Untranslated: map[string][]string{}}
	r.Undefined = missing(used, primary)
	r.Unused = missing(primary, used)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		ids, err := localeIDs(f)
		if err != nil {
			return Report{}, err
		}
		if m := missing(primary, ids); len(m) > 0 {
			r.Untranslated[filepath.Base(f)] = m
		}
	}
	return r, nil
}

// Print writes a human-readable summary.
func (r Report) Print(w io.Writer) {
	for _, id := range r.Undefined {
		fmt.Fprintf(w, "undefined: %s\n", id)
	}
	for _, id := range r.Unused {
		fmt.Fprintf(w, "unused: %s\n", id)
	}
	locales := make([]string, 0, len(r.Untranslated))
	for l := range r.Untranslated {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		fmt.Fprintf(w, "%s lacks: %s\n", l, strings.Join(r.Untranslated[l], ", "))
	}
	if !r.Failed() && len(r.Unused) == 0 && len(locales) == 0 {
		fmt.Fprintln(w, "all locales consistent")
	}
}

// usedIDs collects the literal IDs passed to i18n.T in non-test Go files.
func usedIDs(root string) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			ids[m[1]] = struct{}{}
		}
		return nil
	})
	return ids, err
}

// localeIDs reads the message IDs of a flat locale file.
func localeIDs(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ids := make(map[string]struct{}, len(data))
	for k := range data {
		ids[k] = struct{}{}
	}
	return ids, nil
}

// missing returns the sorted keys of want absent from have.
func missing(want, have map[string]struct{}) []string {
	var out []string
	for k := range want {
		if _, ok := have[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
