// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/playprofile/internal/config"
	"github.com/ManuGH/playprofile/internal/device"
	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/ManuGH/playprofile/internal/metrics"
	"github.com/ManuGH/playprofile/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	preset     string

	loader *config.Loader
	cfg    config.Config
	ctx    context.Context
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, ctx: context.Background()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "playprofile",
		Short:         "Build and check the device profile sent to the media server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to config file (YAML)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	flags.StringVar(&a.preset, "device", "", "device preset ("+strings.Join(device.PresetNames(), ", ")+")")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newValidateCmd(a),
		newFixturesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup configures logging, stamps a correlation id and loads the config.
func (a *app) setup(cmd *cobra.Command) error {
	xglog.Configure(xglog.Config{Output: a.stderr, Version: version.Version})

	ctx := xglog.NewCorrelationContext(cmd.Context())
	cmd.SetContext(ctx)
	a.ctx = ctx

	a.loader = config.NewLoader(afero.NewOsFs(), a.configPath)
	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	if a.preset != "" {
		cfg.Device.Preset = a.preset
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if err := xglog.SetLevel(level); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	logger := xglog.WithComponentFromContext(ctx, "cli")
	logger.Debug().
		Str(xglog.FieldEvent, "cli.start").
		Str("command", cmd.CommandPath()).
		Str(xglog.FieldPath, a.configPath).
		Msg("starting command")
	return nil
}

// flushMetrics exports the registry to the configured textfile. It runs after
// every command, failed ones included.
func (a *app) flushMetrics() error {
	path := a.cfg.Metrics.Textfile
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	logger := xglog.WithComponentFromContext(a.ctx, "cli")
	logger.Debug().Str(xglog.FieldEvent, "metrics.textfile_written").Str(xglog.FieldPath, path).Msg("metrics written")
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.String())
			return err
		},
	}
}
