package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "dhgroups.ini")
	require.NoError(t, os.WriteFile(f, []byte(body), 0o600))
	return f
}

func TestLoadConfig(t *testing.T) {
	conf, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, modp.DefaultMaxTrials, conf.Search.MaxTrials)
	assert.Equal(t, "info", conf.Log.Level)

	f := writeConfig(t, "[search]\nmax_trials = 64\ntimeout = 2s\n[log]\nlevel = debug\n")
	conf, err = loadConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, conf.Search.MaxTrials)
	assert.Equal(t, 2*time.Second, conf.Search.Timeout)
	assert.Equal(t, "debug", conf.Log.Level)

	// Missing keys keep their defaults.
	f = writeConfig(t, "[log]\nlevel = warn\n")
	conf, err = loadConfig(f)
	require.NoError(t, err)
	assert.Equal(t, modp.DefaultMaxTrials, conf.Search.MaxTrials)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"trials", "[search]\nmax_trials = 0\n"},
		{"timeout", "[search]\ntimeout = -1s\n"},
		{"timeout-malformed", "[search]\ntimeout = banana\n"},
		{"trials-malformed", "[search]\nmax_trials = lots\n"},
		{"level", "[log]\nlevel = loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{out: &out}
	err := a.cli().Run(append([]string{"dhgroups"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "\n"))
	assert.Contains(t, out, "MODP8192")

	out, err = run(t, "check", "--group", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "MODP1536")

	out, err = run(t, "subgroup", "--group", "MODP2048", "--bits", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "MODP2048/64")

	out, err = run(t, "custom", "--prime", "1623299", "--bits", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "0xc6281")

	out, err = run(t, "generate", "--prime-bits", "64", "--bits", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "name")

	for _, backend := range []string{"modp", "P-256", "ristretto255", "secp256k1"} {
		out, err = run(t, "exchange", "--group", "5", "--backend", backend)
		require.NoError(t, err, backend)
		assert.Contains(t, out, "secret")
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "check", "--group", "1")
	assert.True(t, errors.Is(err, modp.ErrUnknownGroup))

	_, err = run(t, "custom", "--prime", "29", "--bits", "4")
	assert.True(t, errors.Is(err, modp.ErrInvalidPrime))

	_, err = run(t, "custom", "--prime", "0xzz", "--bits", "4")
	assert.True(t, errors.Is(err, modp.ErrParse))

	_, err = run(t, "subgroup", "--bits", "1")
	assert.True(t, errors.Is(err, modp.ErrInvalidBitLength))

	_, err = run(t, "exchange", "--backend", "p521")
	assert.Error(t, err)

	_, err = run(t, "--max-trials", "1", "--timeout", "1ns", "subgroup", "--bits", "256")
	assert.Error(t, err)
}
