// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package fixtures renders every profile/device combination to canonical
// JSON and pins the result with a sha256 baseline manifest, so any change to
// what a client reports to the server shows up as a reviewable diff.
package fixtures

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/dlna"
	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/ManuGH/playprofile/internal/metrics"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/ManuGH/playprofile/internal/schema"
	"golang.org/x/sync/errgroup"
)

// ErrFixtureDrift is returned in check mode when a file on disk differs from
// what the builders produce now.
var ErrFixtureDrift = errors.New("fixture drift")

const (
	ManifestVersion = "playprofile-baseline-v1"
	ManifestFile    = "BASELINE.json"
	DefaultDir      = "fixtures/profiles"
)

// Options controls one generator run.
type Options struct {
	Dir string
	// ManifestPath defaults to Dir/BASELINE.json.
	ManifestPath string
	// Check compares instead of writing.
	Check bool
	// Validator defaults to schema.Default().
	Validator *schema.Validator
	Now       func() time.Time
}

type Manifest struct {
	Version string            `json:"version"`
	Hashes  map[string]string `json:"hashes"` // file -> sha256 hex
}

// Result lists the fixture files of a run in generation order.
type Result struct {
	Files    []string
	Manifest Manifest
}

type rendered struct {
	file string
	data []byte
}

// FileName is the fixture file of one profile/device pair.
func FileName(profileName, preset string) string {
	return profileName + "__" + preset + ".json"
}

// Render encodes p as indented JSON with a trailing newline.
func Render(p dlna.DeviceProfile) ([]byte, error) {
	return marshalCanonical(p)
}

// Generate builds every registered profile for every device preset.
func Generate(ctx context.Context, opts Options) (Result, error) {
	mode := "write"
	if opts.Check {
		mode = "check"
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	res, err := generate(ctx, opts)
	metrics.RecordFixtureRun(mode, err, now())

	logger := xglog.WithComponentFromContext(ctx, "fixtures")
	switch {
	case errors.Is(err, ErrFixtureDrift):
		logger.Error().Err(err).Str(xglog.FieldEvent, "fixtures.drift").Msg("fixtures drifted from builders")
	case err != nil:
		logger.Error().Err(err).Str(xglog.FieldEvent, "fixtures.failed").Str("mode", mode).Msg("fixture run failed")
	default:
		logger.Info().
			Str(xglog.FieldEvent, "fixtures.done").
			Str("mode", mode).
			Int("files", len(res.Files)).
			Msg("fixture run complete")
	}
	return res, err
}

func generate(ctx context.Context, opts Options) (Result, error) {
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = filepath.Join(opts.Dir, ManifestFile)
	}
	validator := opts.Validator
	if validator == nil {
		v, err := schema.Default()
		if err != nil {
			return Result{}, err
		}
		validator = v
	}

	out, err := renderAll(ctx, validator)
	if err != nil {
		return Result{}, err
	}

	if !opts.Check {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create fixtures dir: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(opts.ManifestPath), 0o755); err != nil {
			return Result{}, fmt.Errorf("create manifest dir: %w", err)
		}
	}

	res := Result{
		Files:    make([]string, 0, len(out)),
		Manifest: Manifest{Version: ManifestVersion, Hashes: make(map[string]string, len(out))},
	}
	for _, r := range out {
		path := filepath.Join(opts.Dir, r.file)
		if err := writeOrCheck(ctx, path, r.data, opts.Check); err != nil {
			return Result{}, err
		}
		sum := sha256.Sum256(r.data)
		res.Manifest.Hashes[r.file] = hex.EncodeToString(sum[:])
		res.Files = append(res.Files, r.file)
	}

	if err := sweepStale(ctx, opts, res.Manifest.Hashes); err != nil {
		return Result{}, err
	}

	manifestJSON, err := marshalCanonical(res.Manifest)
	if err != nil {
		return Result{}, fmt.Errorf("encode manifest: %w", err)
	}
	if err := writeOrCheck(ctx, opts.ManifestPath, manifestJSON, opts.Check); err != nil {
		return Result{}, err
	}
	return res, nil
}

// renderAll builds, validates and encodes every combination concurrently.
// Output order follows profile.Names() x device.PresetNames().
func renderAll(ctx context.Context, validator *schema.Validator) ([]rendered, error) {
	type job struct {
		profile string
		preset  string
	}
	var jobs []job
	for _, name := range profile.Names() {
		for _, preset := range device.PresetNames() {
			jobs = append(jobs, job{profile: name, preset: preset})
		}
	}

	out := make([]rendered, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			dev, err := device.Preset(j.preset)
			if err != nil {
				return err
			}
			p, err := profile.Build(gctx, j.profile, dev)
			if err != nil {
				return err
			}
			if err := validator.Validate(gctx, p); err != nil {
				return fmt.Errorf("%s/%s: %w", j.profile, j.preset, err)
			}
			data, err := Render(p)
			if err != nil {
				return fmt.Errorf("encode %s/%s: %w", j.profile, j.preset, err)
			}
			out[i] = rendered{file: FileName(j.profile, j.preset), data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sweepStale finds fixture files no builder produces any more. Check mode
// reports the first one as drift; write mode removes them.
func sweepStale(ctx context.Context, opts Options, expected map[string]string) error {
	matches, err := filepath.Glob(filepath.Join(opts.Dir, "*__*.json"))
	if err != nil {
		return fmt.Errorf("list fixtures: %w", err)
	}
	manifest := filepath.Clean(opts.ManifestPath)
	logger := xglog.WithComponentFromContext(ctx, "fixtures")
	for _, path := range matches {
		if _, ok := expected[filepath.Base(path)]; ok || filepath.Clean(path) == manifest {
			continue
		}
		if opts.Check {
			return fmt.Errorf("%w: %s is stale (run fixtures without --check)", ErrFixtureDrift, path)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale fixture: %w", err)
		}
		logger.Info().Str(xglog.FieldEvent, "fixtures.stale_removed").Str(xglog.FieldFile, path).Msg("removed stale fixture")
	}
	return nil
}

func writeOrCheck(ctx context.Context, path string, data []byte, check bool) error {
	if !check {
		return writeAtomic(ctx, path, data)
	}
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s missing (run fixtures without --check)", ErrFixtureDrift, path)
	}
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if !bytes.Equal(bytes.TrimSpace(existing), bytes.TrimSpace(data)) {
		return fmt.Errorf("%w: %s (run fixtures without --check)", ErrFixtureDrift, path)
	}
	return nil
}

func marshalCanonical(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
