// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package schema checks built profiles against the embedded wire schema.
package schema

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ManuGH/playprofile/internal/dlna"
	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/ManuGH/playprofile/internal/metrics"
	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed deviceprofile.yaml
var documentYAML []byte

const rootSchema = "DeviceProfile"

// ErrSchemaViolation classifies profiles the server schema would reject.
var ErrSchemaViolation = errors.New("device profile violates schema")

// Validator holds the resolved DeviceProfile schema.
type Validator struct {
	schema *openapi3.Schema
}

// NewValidator loads and validates the embedded OpenAPI document.
func NewValidator(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(documentYAML)
	if err != nil {
		return nil, fmt.Errorf("load schema document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate schema document: %w", err)
	}
	ref, ok := doc.Components.Schemas[rootSchema]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("schema document has no %s component", rootSchema)
	}
	return &Validator{schema: ref.Value}, nil
}

var defaultValidator = sync.OnceValues(func() (*Validator, error) {
	return NewValidator(context.Background())
})

// Default returns a process-wide validator built on first use.
func Default() (*Validator, error) {
	return defaultValidator()
}

// Validate checks the JSON form of p, exactly as it goes on the wire.
func (v *Validator) Validate(ctx context.Context, p dlna.DeviceProfile) error {
	err := v.validate(p)
	metrics.RecordSchemaValidation(err)

	logger := xglog.WithComponentFromContext(ctx, "schema")
	if err != nil {
		logger.Warn().
			Err(err).
			Str(xglog.FieldEvent, "schema.violation").
			Str(xglog.FieldProfileName, p.Name).
			Msg("device profile failed schema validation")
		return err
	}
	logger.Debug().
		Str(xglog.FieldEvent, "schema.valid").
		Str(xglog.FieldProfileName, p.Name).
		Msg("device profile matches schema")
	return nil
}

func (v *Validator) validate(p dlna.DeviceProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	if err := v.schema.VisitJSON(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}
