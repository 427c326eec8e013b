package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/citydb"
)

type fixture struct {
	dir, cities, edges, query, out string
}

func newFixture(t *testing.T, query string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		cities: filepath.Join(dir, "city.dat"),
		edges:  filepath.Join(dir, "edge.dat"),
		query:  filepath.Join(dir, "input.txt"),
		out:    filepath.Join(dir, "output.txt"),
	}
	require.NoError(t, os.WriteFile(f.cities, []byte("A r 0 0\nB r 0 1\nC r 1 1\nD r 5 5\n"), 0o600))
	require.NoError(t, os.WriteFile(f.edges, []byte("A B\nB C\n"), 0o600))
	require.NoError(t, os.WriteFile(f.query, []byte(query), 0o600))

	return f
}

func (f fixture) run(t *testing.T, extra ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args := append([]string{
		"-env", filepath.Join(f.dir, "absent.env"),
		"-cities", f.cities,
		"-edges", f.edges,
	}, extra...)
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Report(t *testing.T) {
	f := newFixture(t, "a\nC\n")
	code, stdout, stderr := f.run(t, f.query, f.out)
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(f.out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Breadth-First Search Results:\nA\nB\nC\nHops: 2\nDistance: 200.0 miles\n")
	assert.Contains(t, string(got), "A* Search Results:\n")
	assert.Equal(t, string(got), stdout)
}

func TestRun_UnknownCity(t *testing.T) {
	f := newFixture(t, "A\nAtlantis\n")
	code, _, _ := f.run(t, f.query, f.out)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(f.out)
	require.NoError(t, err)
	assert.Equal(t, "No such city: Atlantis\n", string(got))
}

func TestRun_LoadErrorsAreFatal(t *testing.T) {
	f := newFixture(t, "A\nC\n")
	require.NoError(t, os.WriteFile(f.edges, []byte("A Nowhere\n"), 0o600))
	code, _, stderr := f.run(t, f.query, f.out)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown city")
	assert.NoFileExists(t, f.out)
}

func TestRun_MalformedQuery(t *testing.T) {
	f := newFixture(t, "A\n")
	code, _, _ := f.run(t, f.query, f.out)
	assert.Equal(t, 1, code)
}

func TestRun_Usage(t *testing.T) {
	f := newFixture(t, "A\nC\n")
	code, _, stderr := f.run(t, f.query)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: citysearch")
}

func TestRun_Database(t *testing.T) {
	f := newFixture(t, "A\nC\n")
	dbPath := filepath.Join(f.dir, "cities.db")
	db, err := citydb.Open(dbPath)
	require.NoError(t, err)
	for _, stmt := range []string{
		"INSERT INTO cities (name, latitude, longitude) VALUES ('A', 0, 0), ('B', 0, 1), ('C', 1, 1)",
		"INSERT INTO edges (a, b) VALUES ('A', 'B'), ('B', 'C')",
	} {
		_, err := db.SqlDB().Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	code, stdout, stderr := f.run(t, "-db", dbPath, f.query, f.out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Depth-First Search Results:\nA\nB\nC\n")
}
