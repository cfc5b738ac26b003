package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/eshop/internal/shell"
)

func newFilterCmd(opts *rootOptions) *cobra.Command {
	var list, reset bool
	valid := make([]string, 0, len(shell.Filters()))
	for _, f := range shell.Filters() {
		valid = append(valid, f.String())
	}

	cmd := &cobra.Command{
		Use:       "filter [value]",
		Short:     "Print or set the persisted sort filter",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, f := range shell.Filters() {
					fmt.Fprintf(out, "%-12s %s\n", f, f.Label())
				}
				return nil
			}
			if reset && len(args) > 0 {
				return fmt.Errorf("--reset takes no value")
			}

			rt, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if reset {
				// The next mount finds no value and writes Default back.
				if err := rt.store.Delete(cmd.Context(), shell.FilterKey); err != nil {
					return fmt.Errorf("reset filter: %w", err)
				}
				rt.logger.Info("filter reset from cli")
			}

			var persistErr error
			ctrl := shell.New(cmd.Context(), rt.store, shell.Options{
				Role:           shell.ParseRole(rt.cfg.UI.Role),
				Logger:         rt.logger,
				OnPersistError: func(err error) { persistErr = err },
			})
			if persistErr != nil {
				return persistErr
			}
			if len(args) == 1 {
				f, err := shell.ParseFilter(args[0])
				if err != nil {
					return err
				}
				if err := ctrl.SetFilter(f); err != nil {
					return err
				}
				rt.logger.Info("filter set from cli", zap.Stringer("filter", f))
			}
			fmt.Fprintln(out, ctrl.Filter())
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list accepted values")
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored filter")
	return cmd
}
