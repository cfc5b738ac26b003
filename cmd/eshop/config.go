package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/eshop/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration, flag overrides included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := effectiveConfig(opts)
			if err != nil {
				return err
			}
			if err := config.Save(opts.configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config written")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := effectiveConfig(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prefs.backend   = %s\n", cfg.Prefs.Backend)
			fmt.Fprintf(out, "prefs.path      = %s\n", cfg.Prefs.Path)
			fmt.Fprintf(out, "ui.role         = %s\n", cfg.UI.Role)
			fmt.Fprintf(out, "ui.title        = %s\n", cfg.UI.Title)
			fmt.Fprintf(out, "ui.breakpoint   = %d\n", cfg.UI.Breakpoint)
			fmt.Fprintf(out, "ui.drawer_width = %d\n", cfg.UI.DrawerWidth)
			fmt.Fprintf(out, "log.path        = %s\n", cfg.Log.Path)
			fmt.Fprintf(out, "log.level       = %s\n", cfg.Log.Level)
			return nil
		},
	})
	return cmd
}
