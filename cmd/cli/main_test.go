package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/clampsum/internal/cli"
	"github.com/specialistvlad/clampsum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	stdout   string
	stderr   string
	exitCode int
}

// invoke runs the program the way main does and captures everything the
// user would see.
func invoke(t *testing.T, stdin string, args ...string) invocation {
	t.Helper()

	var out, errOut bytes.Buffer
	code := 0
	if err := run(strings.NewReader(stdin), &out, &errOut, args); err != nil {
		code = report(&errOut, err)
	}
	return invocation{stdout: out.String(), stderr: errOut.String(), exitCode: code}
}

func TestRun_Scenarios(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"passthrough", []string{"0.0", "1000000000.0"}, testutil.Lines("5.0"), "5.0\n5.0\n"},
		{"threshold", []string{"2.0", "10.0"}, testutil.Lines("5.0", "5.0"), "3.0\n3.0\n6.0\n"},
		{"clip", []string{"0.0", "5.0"}, testutil.Lines("10.0"), "5.0\n5.0\n"},
		{"empty stdin", []string{"0.0", "5.0"}, "", "0.0\n"},
		{"tiny exponent", []string{"0", "10"}, testutil.Lines("1e-999999999"), "0.0\n0.0\n"},
		{"carriage returns", []string{"2.0", "10.0"}, "5.0\r5.0\r", "3.0\n3.0\n6.0\n"},
		{"hundred inputs", []string{"0", "1000"}, testutil.Lines(testutil.Repeat("1", 100)...), strings.Repeat("1.0\n", 100) + "100.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// --- Act ---
			res := invoke(t, tt.stdin, tt.args...)

			// --- Assert ---
			assert.Equal(t, 0, res.exitCode)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Each case breaks exactly one rule; the run must stop with that rule's
	// diagnostic and print nothing on stdout.
	tests := []struct {
		name   string
		args   []string
		stdin  string
		stderr string
		code   int
	}{
		{"no arguments", nil, "", "Usage: clampsum <threshold> <limit>\n", cli.ExitFailure},
		{"bad threshold", []string{"abc", "5"}, "", "Error: Threshold must be a valid decimal number.\n", cli.ExitFailure},
		{"negative threshold", []string{"-1", "5"}, "", "Error: Threshold must be between 0.0 and 1,000,000,000.0 inclusive.\n", cli.ExitFailure},
		{"limit too large", []string{"0", "1000000001"}, "", "Error: Limit must be between 0.0 and 1,000,000,000.0 inclusive.\n", cli.ExitFailure},
		{"empty line", []string{"0", "5"}, "1\n\n", "Error: All lines should be decimal number. Empty line found.\n", cli.ExitFailure},
		{"bad input", []string{"0", "5"}, "1\nfive\n", "Error: Input five must be a valid decimal number.\n", cli.ExitFailure},
		{"input out of range", []string{"0", "5"}, "-3\n", "Error: Input -3 must be between 0.0 and 1,000,000,000.0 inclusive.\n", cli.ExitFailure},
		{"huge exponent", []string{"0", "5"}, "1e99999999999\n", "Error: Input 1e99999999999 must be between 0.0 and 1,000,000,000.0 inclusive.\n", cli.ExitFailure},
		{"too many inputs", []string{"0", "5"}, testutil.Lines(testutil.Repeat("1", 101)...), "Error: Input count must not exceed 100 numbers.\n", cli.ExitFailure},
		{"unknown flag", []string{"-x", "1", "2"}, "", "flag provided but not defined: -x\n", cli.ExitFlagError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// --- Act ---
			res := invoke(t, tt.stdin, tt.args...)

			// --- Assert ---
			assert.Equal(t, tt.code, res.exitCode)
			assert.Equal(t, tt.stderr, res.stderr)
			if tt.code == cli.ExitFailure {
				assert.Empty(t, res.stdout)
			}
		})
	}
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	res := invoke(t, "", "-h")
	assert.Equal(t, 0, res.exitCode)
	assert.Contains(t, res.stdout, "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParameterFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The parameter file replaces both positional arguments.
	path := testutil.WriteFile(t, "params.hcl", "threshold = 2.0\nlimit = \"10.0\"\n")

	// --- Act ---
	res := invoke(t, testutil.Lines("5.0", "5.0"), "-config", path)

	// --- Assert ---
	assert.Equal(t, 0, res.exitCode)
	assert.Equal(t, "3.0\n3.0\n6.0\n", res.stdout)
}

func TestRun_ParameterFileOutOfRange(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := testutil.WriteFile(t, "params.hcl", "threshold = 0\nlimit = 2e9\n")

	// --- Act ---
	res := invoke(t, "", "-config", path)

	// --- Assert ---
	// Values from the file go through the same checks as arguments.
	assert.Equal(t, cli.ExitFailure, res.exitCode)
	assert.Equal(t, "Error: Limit must be between 0.0 and 1,000,000,000.0 inclusive.\n", res.stderr)
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	t.Parallel()

	// --- Act ---
	res := invoke(t, testutil.Lines("1"), "-log-level", "debug", "0", "5")

	// --- Assert ---
	assert.Equal(t, 0, res.exitCode)
	assert.Equal(t, "1.0\n1.0\n", res.stdout)
	assert.Contains(t, res.stderr, "Transform complete.")
}

func TestReport_PlainError(t *testing.T) {
	var errOut bytes.Buffer
	code := report(&errOut, errors.New("something odd"))
	require.Equal(t, cli.ExitFailure, code)
	assert.Equal(t, "something odd\n", errOut.String())
}
