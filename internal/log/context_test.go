// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextWithCorrelationID(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		id   string
		want string
	}{
		{name: "nil context", ctx: nil, id: "corr-1", want: "corr-1"},
		{name: "background context", ctx: context.Background(), id: "corr-2", want: "corr-2"},
		{name: "empty id", ctx: context.Background(), id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithCorrelationID(tt.ctx, tt.id)
			assert.Equal(t, tt.want, CorrelationIDFromContext(ctx))
		})
	}
}

func TestCorrelationIDFromNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Empty(t, CorrelationIDFromContext(nil))
}

func TestNewCorrelationContextIsUUID(t *testing.T) {
	ctx := NewCorrelationContext(context.Background())
	id := CorrelationIDFromContext(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	other := CorrelationIDFromContext(NewCorrelationContext(context.Background()))
	assert.NotEqual(t, id, other)
}

func TestWithContextAddsCorrelationField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := ContextWithCorrelationID(context.Background(), "corr-xyz")
	l := WithContext(ctx, logger)
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "corr-xyz", entry[FieldCorrelationID])
}

func TestWithContextWithoutFieldsKeepsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	l := WithContext(context.Background(), logger)
	l.Info().Msg("plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry[FieldCorrelationID]
	assert.False(t, ok)
}
