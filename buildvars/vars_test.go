// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected dev got %s", got)
	}
	Version = "v2.0.0"
	if got := VersionOrDefault("dev"); got != "v2.0.0" {
		t.Fatalf("expected v2.0.0 got %s", got)
	}
}
