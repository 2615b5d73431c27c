// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/colorbar/internal/colors"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	err := runGenerate(&buf, generateOptions{Theme: "both", Count: 3, Seed: 11, Format: "json"}, discard)
	require.NoError(t, err)

	var out []struct {
		Theme string  `json:"theme"`
		H     int     `json:"h"`
		S     float64 `json:"s"`
		L     float64 `json:"l"`
		Hex   string  `json:"hex"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 6)

	for i, s := range out {
		if i%2 == 0 {
			assert.Equal(t, "light", s.Theme)
			assert.GreaterOrEqual(t, s.S, 50.0)
		} else {
			assert.Equal(t, "dark", s.Theme)
			assert.LessOrEqual(t, s.S, 49.0)
		}
		assert.Len(t, s.Hex, 7)
	}
}

func TestRunGenerateIsDeterministicWithSeed(t *testing.T) {
	opts := generateOptions{Theme: "dark", Count: 5, Seed: 1234, Format: "yaml"}

	var a, b bytes.Buffer
	require.NoError(t, runGenerate(&a, opts, discard))
	require.NoError(t, runGenerate(&b, opts, discard))

	assert.Equal(t, a.String(), b.String())
}

func TestRunGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts generateOptions
	}{
		{"theme", generateOptions{Theme: "sepia", Count: 1, Format: "text"}},
		{"format", generateOptions{Theme: "light", Count: 1, Format: "xml"}},
		{"count", generateOptions{Theme: "light", Count: 0, Format: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runGenerate(io.Discard, tt.opts, discard)
			assert.ErrorIs(t, err, colors.ErrInvalidArgument)
		})
	}
}

func TestRunConvert(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runConvert(&buf, []string{"-30", "150", "-10"}, "dark", "text", true))

	out := buf.String()
	assert.Contains(t, out, "DARK")
	assert.Contains(t, out, "hsl(-30, 150%, -10%)")
	assert.Contains(t, out, "#000000")
	assert.Contains(t, out, "rgb(0, 0, 0)")
}

func TestRunConvertRejectsBadNumbers(t *testing.T) {
	err := runConvert(io.Discard, []string{"red", "100", "50"}, "light", "text", true)
	assert.ErrorIs(t, err, colors.ErrInvalidArgument)

	err = runConvert(io.Discard, []string{"0", "full", "50"}, "light", "text", true)
	assert.ErrorIs(t, err, colors.ErrInvalidArgument)
}
