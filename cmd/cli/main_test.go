package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent")
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{missing})

	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestRun_EmitsGraphDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `
resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}

output "vpc" {
  value = aws_vpc.main.id
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte(content), 0o644))

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{dir})
	require.NoError(t, err)

	var doc struct {
		Entities      []map[string]any `json:"entities"`
		Relationships []map[string]any `json:"relationships"`
		Metadata      map[string]any   `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc.Entities, 2)
	assert.Len(t, doc.Relationships, 1)
}
