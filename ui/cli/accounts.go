// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/KenKundert/avendesora-sub000/internal/i18n"
)

func (a *app) accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: i18n.T("accounts.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if err := a.loadStore(); err != nil {
				return err
			}
			defer a.store.Wipe()

			accts := a.store.Accounts()
			if len(accts) == 0 {
				fmt.Fprintln(a.stdout, i18n.T("accounts.none"))
				return nil
			}
			t := table.NewWriter()
			t.SetOutputMirror(a.stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Account", "Aliases", "Default", "Fields"})
			for _, acct := range accts {
				def, err := acct.DefaultField(a.cfg.DefaultField)
				if err != nil {
					def = "-"
				}
				t.AppendRow(table.Row{acct.Name, strings.Join(acct.Aliases, ", "), def, strings.Join(acct.FieldNames(), ", ")})
			}
			t.Render()
			return nil
		},
	}
}
