// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KenKundert/avendesora-sub000/internal/config"
	"github.com/KenKundert/avendesora-sub000/internal/i18n"
)

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("init.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			path := a.cfgFile
			if path == "" {
				p, err := config.GetConfigPath(false)
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintln(a.stdout, i18n.T("init.exists", path))
				return nil
			}
			if err := config.WriteConfigFileTo(&a.cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, i18n.T("init.written", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
