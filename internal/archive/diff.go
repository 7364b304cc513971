// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package archive

import "sort"

// Status classifies a difference between two archives.
type Status string

const (
	Added   Status = "added"
	Removed Status = "removed"
	Changed Status = "changed"
	// Failed marks a field that can no longer be generated.
	Failed Status = "failed"
)

// Change is one differing entry.
type Change struct {
	Key    string
	Status Status
}

// Diff compares a saved archive with a fresh one, sorted by key. A field
// failing now is Failed rather than Removed, unless it failed in saved too.
func Diff(saved, current *Archive) []Change {
	var out []Change
	failedBefore := make(map[string]bool, len(saved.Failed))
	for _, k := range saved.Failed {
		failedBefore[k] = true
	}
	failedNow := make(map[string]bool, len(current.Failed))
	for _, k := range current.Failed {
		failedNow[k] = true
		if !failedBefore[k] {
			out = append(out, Change{Key: k, Status: Failed})
		}
	}
	for k, fp := range current.Entries {
		old, ok := saved.Entries[k]
		switch {
		case !ok:
			out = append(out, Change{Key: k, Status: Added})
		case old != fp:
			out = append(out, Change{Key: k, Status: Changed})
		}
	}
	for k := range saved.Entries {
		if _, ok := current.Entries[k]; !ok && !failedNow[k] {
			out = append(out, Change{Key: k, Status: Removed})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
