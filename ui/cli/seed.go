// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/KenKundert/avendesora-sub000/internal/i18n"
	"github.com/KenKundert/avendesora-sub000/internal/logging"
	"github.com/KenKundert/avendesora-sub000/internal/security"
)

// SeedEnv names the environment variable consulted for a master seed when
// the accounts file has none.
const SeedEnv = "AVENDESORA_MASTER_SEED"

// ensureSeed supplies a fallback master seed to the store when some account
// needs one. The environment wins over the interactive prompt.
func (a *app) ensureSeed() error {
	if !a.store.NeedsSeed() {
		return nil
	}
	if v, ok := os.LookupEnv(SeedEnv); ok && v != "" {
		logging.Debugf("master seed taken from %s", SeedEnv)
		a.store.SetFallbackSeed(security.FromString(v))
		return nil
	}
	raw, err := a.readSeed()
	if err != nil {
		return err
	}
	seed := security.Secret(raw)
	defer seed.Zero()
	if seed.Empty() {
		return errors.New("empty master seed")
	}
	a.store.SetFallbackSeed(seed)
	return nil
}

// promptSeed reads the master seed from the terminal without echo.
func (a *app) promptSeed() ([]byte, error) {
	f, ok := a.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, errors.New(i18n.T("seed.not_terminal"))
	}
	fmt.Fprint(a.stderr, i18n.T("seed.prompt"))
	raw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return nil, fmt.Errorf("could not read master seed: %w", err)
	}
	return raw, nil
}
