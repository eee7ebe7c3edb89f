package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"dad-circles-backend/internal/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	tokenEmail = "Ops@DadCircles.test"
	defer func() { tokenEmail = "" }()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, mintToken(cmd, nil))

	tokens, err := auth.NewTokenService("cli-test-secret", time.Hour)
	require.NoError(t, err)
	claims, err := tokens.Validate(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@dadcircles.test", claims.Email)
}

func TestParseGroupID(t *testing.T) {
	id := uuid.New()
	got, err := parseGroupID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseGroupID("not-a-uuid")
	assert.ErrorContains(t, err, "invalid group ID")
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printJSON(&out, map[string]int{"considered": 3}))
	assert.Equal(t, "{\n  \"considered\": 3\n}\n", out.String())
}

func TestCommandArgs(t *testing.T) {
	assert.Error(t, approveCmd.Args(approveCmd, nil))
	assert.Error(t, deleteCmd.Args(deleteCmd, []string{"a", "b"}))
	assert.NoError(t, approveCmd.Args(approveCmd, []string{uuid.NewString()}))
	assert.Error(t, runCmd.Args(runCmd, []string{"extra"}))
}
