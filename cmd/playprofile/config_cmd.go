// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the effective configuration (defaults, file and ENV merged)",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err := enc.Encode(a.cfg); err != nil {
					return err
				}
				return enc.Close()
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Load and validate the configuration",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				// Loading already validated; reaching here means the config is usable.
				src := a.loader.Path()
				if src == "" {
					src = "defaults+env"
				}
				dev, err := a.cfg.DeviceInfo()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(a.stdout, "OK: %s (profile=%s device=%s)\n", src, a.cfg.Profile, dev)
				return err
			},
		},
	)
	return cmd
}
