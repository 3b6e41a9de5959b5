package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
	testutil "github.com/gcbaptista/go-movie-analyzer/internal/testing"
	"github.com/gcbaptista/go-movie-analyzer/model"
)

// runCLI executes the command tree with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sourceArgs(t *testing.T) []string {
	t.Helper()
	paths := testutil.WriteSources(t)
	return []string{"--cast", paths.Cast, "--rated", paths.Rated, "--gross", paths.Gross}
}

func TestReportCommand_Text(t *testing.T) {
	stdout, stderr, err := runCLI(t, append([]string{"report"}, sourceArgs(t)...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "6 movies, 2 in all three lists")
	assert.Contains(t, stdout, "Which movies are both top rated and top grossing?\n2\t[(Alpha, 1994), (Delta, 2010)]\n")
	assert.Contains(t, stdout, "Who directed the highest grossing movies?\n2\t[(750, DirB), (300, DirA)]\n")
	assert.Contains(t, stderr, "Joined 6 movies")
}

func TestReportCommand_QuietJSONToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	args := append([]string{"report", "-q", "-f", "json", "-o", out}, sourceArgs(t)...)

	stdout, stderr, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 6, report.MovieCount)
	decades, ok := report.Section("decades")
	require.True(t, ok)
	assert.Equal(t, []model.NameCount{
		{Count: 2, Name: "2010s"},
		{Count: 2, Name: "2000s"},
		{Count: 2, Name: "1990s"},
	}, decades.Counts)
}

func TestReportCommand_HeaderRows(t *testing.T) {
	// Without skipping the header line, the header becomes a movie of its own.
	args := append([]string{"report", "-q", "--header-rows", "0"}, sourceArgs(t)...)
	stdout, _, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "7 movies")
}

func TestReportCommand_MissingSource(t *testing.T) {
	args := []string{"report", "-q", "--cast", filepath.Join(t.TempDir(), "missing.txt")}
	_, _, err := runCLI(t, args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrSourceNotFound))
}

func TestQueryCommand(t *testing.T) {
	args := append([]string{"query", "top-billed", "-q", "-n", "2"}, sourceArgs(t)...)
	stdout, _, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "2\t[(2, Ann), (1, Bob)]\n", stdout)

	args = append([]string{"query", "directors", "-q", "--top-only"}, sourceArgs(t)...)
	stdout, _, err = runCLI(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "2\t[DirA, DirB]\n", stdout)
}

func TestQueryCommand_UnknownQuery(t *testing.T) {
	args := append([]string{"query", "best-pizza", "-q"}, sourceArgs(t)...)
	_, _, err := runCLI(t, args...)
	assert.True(t, errors.Is(err, internalErrors.ErrUnknownQuery))
}

func TestQueryCommand_ListsQueriesInHelp(t *testing.T) {
	stdout, _, err := runCLI(t, "query", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "actor-director-pairs")
	assert.Contains(t, stdout, "directors-who-act")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "movie-analyzer version "+version, strings.TrimSpace(stdout))
}
