// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"context"
	"fmt"

	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/google/renameio/v2"
)

// writeAtomic replaces path with data: temp file, fsync, rename.
// Readers never see a half-written fixture.
func writeAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.WithComponentFromContext(ctx, "fixtures")

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending fixture file: %w", err)
	}
	defer func() {
		// no-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xglog.FieldPath, path).Msg("cleanup pending fixture file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write fixture data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace fixture file: %w", err)
	}
	logger.Debug().Str(xglog.FieldEvent, "fixtures.written").Str(xglog.FieldPath, path).Msg("fixture written")
	return nil
}
