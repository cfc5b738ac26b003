package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/eshop/internal/config"
	"github.com/jask/eshop/internal/logging"
	"github.com/jask/eshop/internal/prefs"
	"github.com/jask/eshop/internal/shell"
	"github.com/jask/eshop/internal/tui"
)

type rootOptions struct {
	configPath string
	role       string
	backend    string
	prefsPath  string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "eshop",
		Short: "Terminal storefront shell",
		Long: `eshop runs the storefront shell: a top bar, a filter drawer that
collapses on narrow terminals, and a role-aware action menu.

The selected sort filter is persisted and restored on the next run.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/eshop/config.toml)")
	f.StringVar(&opts.role, "role", "", "signed-in role: admin, user or anything else")
	f.StringVar(&opts.backend, "backend", "", "preference store: sqlite, disk or memory")
	f.StringVar(&opts.prefsPath, "prefs-path", "", "preference store location")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newFilterCmd(opts), newConfigCmd(opts))
	return cmd
}

// env is what every command needs once configuration is resolved.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  prefs.Store
}

func (r *env) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close preference store", zap.Error(err))
	}
	_ = r.logger.Sync()
}

// effectiveConfig loads the config file and applies flag overrides.
func effectiveConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.role != "" {
		cfg.UI.Role = opts.role
	}
	if opts.backend != "" {
		cfg.Prefs.Backend = opts.backend
	}
	if opts.prefsPath != "" {
		cfg.Prefs.Path = opts.prefsPath
	}
	return cfg, nil
}

func loadRuntime(opts *rootOptions) (*env, error) {
	cfg, err := effectiveConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))

	store, err := prefs.Open(cfg.Prefs)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("prefs: %w", err)
	}
	logger.Debug("runtime ready",
		zap.String("backend", cfg.Prefs.Backend),
		zap.String("prefs_path", cfg.Prefs.Path),
		zap.String("role", cfg.UI.Role))
	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func runShell(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := loadRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	app := tui.New(ctx, rt.store, tui.Options{
		Role:        shell.ParseRole(rt.cfg.UI.Role),
		Title:       rt.cfg.UI.Title,
		Breakpoint:  rt.cfg.UI.Breakpoint,
		DrawerWidth: rt.cfg.UI.DrawerWidth,
		Logger:      rt.logger,
		Callbacks: shell.Callbacks{
			OnAddProductRequested: func() { rt.logger.Info("add product flow requested") },
			OnAddAddressRequested: func() { rt.logger.Info("add address flow requested") },
		},
	})
	if err := tui.Run(ctx, app); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
