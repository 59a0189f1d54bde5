// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtoforge/cli/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

func TestLoad_NoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sessionCtx := From(ctx)
	require.NotNil(t, sessionCtx)
	assert.Nil(t, sessionCtx.Config)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		Rules:   "order.yaml",
		Targets: []string{"python"},
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, ConfigFileName)))
	chdir(t, dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sessionCtx := From(ctx)
	require.NotNil(t, sessionCtx)
	require.NotNil(t, sessionCtx.Config)
	assert.Equal(t, "order.yaml", sessionCtx.Config.Rules)
	assert.Equal(t, []string{"python"}, sessionCtx.Config.Targets)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 99"), 0o600))
	chdir(t, dir)

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
