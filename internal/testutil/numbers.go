package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Decimals parses each text as an exact decimal, failing the test on error.
func Decimals(t *testing.T, texts ...string) []decimal.Decimal {
	t.Helper()

	out := make([]decimal.Decimal, 0, len(texts))
	for _, text := range texts {
		d, err := decimal.NewFromString(text)
		require.NoError(t, err, "bad test decimal %q", text)
		out = append(out, d)
	}
	return out
}

// Lines renders values the way they arrive on standard input: one per line,
// each terminated by a newline.
func Lines(values ...string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, "\n") + "\n"
}

// Repeat returns n copies of value, for building inputs near the count bound.
func Repeat(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// AssertDecimalsEqual compares two sequences by value, ignoring scale, so
// 5 and 5.0 are the same.
func AssertDecimalsEqual(t *testing.T, want, got []decimal.Decimal) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}
