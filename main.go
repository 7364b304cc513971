// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Avendesora.
//
// Usage:
//
//	go run . [flags]
//	./avendesora value ACCOUNT [FIELD]
//
// See --help for the full command list.
package main

import (
	"os"

	"github.com/KenKundert/avendesora-sub000/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
