// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/ManuGH/playprofile/internal/fixtures"
	"github.com/spf13/cobra"
)

func newFixturesCmd(a *app) *cobra.Command {
	var (
		check    bool
		dir      string
		manifest string
	)
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write or check the JSON fixtures of every profile and device preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.cfg.Fixtures.Dir
			}
			if manifest == "" {
				manifest = a.cfg.Fixtures.Manifest
			}
			res, err := fixtures.Generate(cmd.Context(), fixtures.Options{
				Dir:          dir,
				ManifestPath: manifest,
				Check:        check,
			})
			if err != nil {
				return err
			}
			verb := "wrote"
			if check {
				verb = "checked"
			}
			fmt.Fprintf(a.stdout, "%s %d fixtures (%s)\n", verb, len(res.Files), res.Manifest.Version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "fail if fixtures differ from the builders")
	cmd.Flags().StringVar(&dir, "dir", "", "fixtures directory (default from config)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "manifest path (default <dir>/"+fixtures.ManifestFile+")")
	return cmd
}
