// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ManuGH/playprofile/internal/config"
	"github.com/ManuGH/playprofile/internal/dlna"
	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/ManuGH/playprofile/internal/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dev, err := a.cfg.DeviceInfo()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPROFILE\tTRANSCODING\tSUBTITLES")
			for _, name := range profile.Names() {
				p, err := profile.Build(cmd.Context(), name, dev)
				if err != nil {
					return err
				}
				marker := ""
				if name == profile.DefaultName {
					marker = " (default)"
				}
				fmt.Fprintf(tw, "%s%s\t%s\t%d\t%d\n", name, marker, p.Name, len(p.TranscodingProfiles), len(p.SubtitleProfiles))
			}
			return tw.Flush()
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var (
		format string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a profile built for the configured device",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Profile
			if len(args) == 1 {
				name = args[0]
			}
			if format == "" {
				format = a.cfg.Output.Format
			}
			if err := a.show(cmd.Context(), a.cfg, name, format); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), func(cfg config.Config) error {
				n := cfg.Profile
				if len(args) == 1 {
					n = args[0]
				}
				f := format
				if !cmd.Flags().Changed("format") {
					f = cfg.Output.Format
				}
				return a.show(cmd.Context(), cfg, n, f)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (json, yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print again whenever the config file changes")
	return cmd
}

func (a *app) show(ctx context.Context, cfg config.Config, name, format string) error {
	dev, err := cfg.DeviceInfo()
	if err != nil {
		return err
	}
	p, err := profile.Build(ctx, name, dev)
	if err != nil {
		return err
	}
	return writeProfile(a.stdout, p, format)
}

func writeProfile(w io.Writer, p dlna.DeviceProfile, format string) error {
	switch strings.ToLower(format) {
	case "", config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p.Clone()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, config.FormatJSON, config.FormatYAML)
	}
}

// watch re-renders via fn on every successful config reload until ctx ends.
func (a *app) watch(ctx context.Context, fn func(config.Config) error) error {
	if a.loader.Path() == "" {
		return fmt.Errorf("--watch needs --config")
	}
	holder := config.NewHolder(a.cfg, a.loader)
	updates := make(chan config.Config, 1)
	holder.RegisterListener(updates)
	if err := holder.StartWatcher(ctx); err != nil {
		return err
	}
	defer holder.Stop()

	logger := xglog.WithComponentFromContext(ctx, "cli")
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-updates:
			if a.preset != "" {
				cfg.Device.Preset = a.preset
			}
			if err := fn(cfg); err != nil {
				logger.Error().Err(err).Str(xglog.FieldEvent, "show.render_failed").Msg("failed to render profile after reload")
			}
		}
	}
}

func newValidateCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "validate [name]",
		Short: "Check a profile against the device profile schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{a.cfg.Profile}
			switch {
			case all:
				names = profile.Names()
			case len(args) == 1:
				names = []string{args[0]}
			}
			dev, err := a.cfg.DeviceInfo()
			if err != nil {
				return err
			}
			v, err := schema.Default()
			if err != nil {
				return err
			}
			for _, name := range names {
				p, err := profile.Build(cmd.Context(), name, dev)
				if err != nil {
					return err
				}
				if err := v.Validate(cmd.Context(), p); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(a.stdout, "OK   %s (%s)\n", p.Name, dev)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "validate every registered profile")
	return cmd
}
