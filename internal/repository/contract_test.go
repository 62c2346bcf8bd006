package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyContract(t *testing.T) {
	require.NoError(t, VerifyContract(context.Background(), filepath.Join("testdata", "openapi.yaml")))
}

func TestVerifyContract_ReportsMissingEndpoints(t *testing.T) {
	full, err := os.ReadFile(filepath.Join("testdata", "openapi.yaml"))
	require.NoError(t, err)

	// Drop everything from the payment method paths onwards.
	trimmed := string(full)[:strings.Index(string(full), "  /payment-methods:")]
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(trimmed), 0600))

	err = VerifyContract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /payment-methods")
	assert.Contains(t, err.Error(), "DELETE /payment-method/{id}")
	assert.NotContains(t, err.Error(), "/auth/login")
}

func TestVerifyContract_MissingFile(t *testing.T) {
	assert.Error(t, VerifyContract(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")))
}
