package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const m0 = "abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon art"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return runCLIWithOutputFlag(t, "text", args...)
}

func runCLIWithOutputFlag(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--home", t.TempDir(), "-o", format}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSplitProducesNLabeledShares(t *testing.T) {
	out, err := runCLI(t, "split", "--secret", m0, "-n", "5", "-t", "3")
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.Contains(t, out, "Share ")
	}
	assert.Equal(t, 5, strings.Count(out, "Share "))
	assert.Contains(t, out, "The secret can be reconstructed from any t out of n shares.")
}

func TestSplitRejectsInvalidThreshold(t *testing.T) {
	_, err := runCLI(t, "split", "--secret", m0, "-n", "2", "-t", "5")
	require.Error(t, err)
}

func TestSplitRejectsWrongWordCount(t *testing.T) {
	_, err := runCLI(t, "split", "--secret", "abandon abandon", "-n", "3", "-t", "2")
	require.Error(t, err)
}

func TestSplitAndReconstructRoundTrip(t *testing.T) {
	splitOut, err := runCLI(t, "split", "--secret", m0, "-n", "5", "-t", "3")
	require.NoError(t, err)

	shares := parseSplitOutput(t, splitOut)
	require.Len(t, shares, 5)

	var shareArg strings.Builder
	for i, s := range shares[:3] {
		if i > 0 {
			shareArg.WriteString(",")
		}
		shareArg.WriteString(s)
	}

	reconstructOut, err := runCLI(t, "reconstruct", "--shares", shareArg.String())
	require.NoError(t, err)
	assert.Equal(t, m0, strings.TrimSpace(reconstructOut))
}

// parseSplitOutput extracts "<id> <24 words>" strings from split's text output.
func parseSplitOutput(t *testing.T, out string) []string {
	t.Helper()

	var shares []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "Share ") {
			continue
		}
		rest := strings.TrimPrefix(line, "Share ")
		idPart, wordsPart, found := strings.Cut(rest, ": ")
		require.True(t, found)

		id, _, found := strings.Cut(idPart, "/")
		require.True(t, found)

		shares = append(shares, id+" "+wordsPart)
	}
	return shares
}
