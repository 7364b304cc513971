// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KenKundert/avendesora-sub000/internal/account"
	"github.com/KenKundert/avendesora-sub000/internal/batch"
	"github.com/KenKundert/avendesora-sub000/internal/i18n"
	"github.com/KenKundert/avendesora-sub000/internal/secrets"
)

// prepare runs setup, loads accounts and resolves the named account.
func (a *app) prepare(cmd *cobra.Command, name string) (*account.Account, error) {
	if err := a.setup(cmd); err != nil {
		return nil, err
	}
	if err := a.loadStore(); err != nil {
		return nil, err
	}
	return a.store.Find(name)
}

func (a *app) valueCmd() *cobra.Command {
	var toClipboard, toStdout bool
	cmd := &cobra.Command{
		Use:   "value ACCOUNT [FIELD]",
		Short: i18n.T("value.short"),
		Long: `Generates one field of an account. Without FIELD the account's
default field is shown (or default_field from the configuration).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.prepare(cmd, args[0])
			if err != nil {
				return err
			}
			defer a.store.Wipe()

			field := ""
			if len(args) > 1 {
				field = args[1]
			} else if field, err = acct.DefaultField(a.cfg.DefaultField); err != nil {
				return err
			}
			g, err := acct.Field(field)
			if err != nil {
				return err
			}
			if acct.FieldNeedsSeed(field) && !acct.HasSeed() {
				if err := a.ensureSeed(); err != nil {
					return err
				}
			}
			v, err := acct.Value(a.engine, field)
			if err != nil {
				return err
			}

			switch {
			case toClipboard:
				a.cfg.Output = "clipboard"
			case toStdout:
				a.cfg.Output = "stdout"
			}
			sink, err := a.sink()
			if err != nil {
				return err
			}
			label := ""
			if sink.Name() == "clipboard" {
				label = acct.Name + "." + field
			}
			if d, ok := g.(secrets.Describer); ok {
				fmt.Fprintln(a.stdout, d.Describe())
			}
			return sink.Deliver(label, v)
		},
	}
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "Copy the value to the clipboard")
	cmd.Flags().BoolVarP(&toStdout, "stdout", "s", false, "Print the value")
	cmd.MarkFlagsMutuallyExclusive("clipboard", "stdout")
	return cmd
}

func (a *app) valuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values ACCOUNT",
		Short: i18n.T("values.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.prepare(cmd, args[0])
			if err != nil {
				return err
			}
			defer a.store.Wipe()
			if acct.NeedsSeed() && !acct.HasSeed() {
				if err := a.ensureSeed(); err != nil {
					return err
				}
			}

			results, err := batch.Run(cmd.Context(), a.engine, batch.Fields(acct, false), a.cfg.Workers)
			if err != nil {
				return err
			}
			label := lipgloss.NewRenderer(a.stdout).NewStyle().Bold(true)
			var failed error
			for _, r := range results {
				name := r.Field
				if g, err := acct.Field(r.Field); err == nil {
					if d, ok := g.(secrets.Describer); ok {
						name = fmt.Sprintf("%s (%s)", r.Field, d.Describe())
					}
				}
				if r.Err != nil {
					fmt.Fprintf(a.stdout, "%s: <%v>\n", label.Render(name), r.Err)
					failed = r.Err
					continue
				}
				fmt.Fprintf(a.stdout, "%s: %s\n", label.Render(name), r.Value)
			}
			return failed
		},
	}
}
