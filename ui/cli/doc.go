// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the avendesora command line using Cobra. It wires
// configuration, logging and the account loader, then delegates secret
// derivation to the engine. CLI code should remain thin.
package cli
