// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KenKundert/avendesora-sub000/internal/archive"
	"github.com/KenKundert/avendesora-sub000/internal/batch"
	"github.com/KenKundert/avendesora-sub000/internal/i18n"
	"github.com/KenKundert/avendesora-sub000/internal/logging"
)

// snapshot fingerprints every generated field of every account.
func (a *app) snapshot(cmd *cobra.Command) (*archive.Archive, error) {
	if err := a.setup(cmd); err != nil {
		return nil, err
	}
	if err := a.loadStore(); err != nil {
		return nil, err
	}
	defer a.store.Wipe()
	if err := a.ensureSeed(); err != nil {
		return nil, err
	}
	results, err := batch.Run(cmd.Context(), a.engine, batch.All(a.store, true), a.cfg.Workers)
	if err != nil {
		return nil, err
	}
	return archive.Build(a.store, results, string(a.engine.Algorithm), a.now())
}

func (a *app) archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: i18n.T("archive.short"),
		Long: `Writes a fingerprint of every generated secret to the archive file.
Only keyed BLAKE2b digests are stored; run 'changed' later to see which
secrets an edit to the accounts file would alter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := a.snapshot(cmd)
			if err != nil {
				return err
			}
			for _, k := range arc.Failed {
				logging.Warnf("%s", i18n.T("archive.failed", k))
			}
			if err := arc.Save(a.cfg.ArchiveFile); err != nil {
				return fmt.Errorf("could not write archive: %w", err)
			}
			fmt.Fprintln(a.stdout, i18n.T("archive.written", len(arc.Entries), a.cfg.ArchiveFile))
			return nil
		},
	}
}

func (a *app) changedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "changed",
		Short: i18n.T("changed.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.snapshot(cmd)
			if err != nil {
				return err
			}
			saved, err := archive.Open(a.cfg.ArchiveFile)
			if err != nil {
				return fmt.Errorf("could not read archive: %w", err)
			}
			changes := archive.Diff(saved, current)
			if len(changes) == 0 {
				fmt.Fprintln(a.stdout, i18n.T("changed.none"))
				return nil
			}
			for _, c := range changes {
				fmt.Fprintln(a.stdout, i18n.T("changed.line", c.Status, c.Key))
			}
			return nil
		},
	}
}
