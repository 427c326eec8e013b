package citydb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/citydb"
	"github.com/katalvlaran/citysearch/loader"
	"github.com/katalvlaran/citysearch/search"
)

func openTestDB(t *testing.T) *citydb.DB {
	t.Helper()
	d, err := citydb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	return d
}

func seed(t *testing.T, d *citydb.DB) {
	t.Helper()
	ctx := context.Background()
	for _, row := range []struct {
		name     string
		lat, lon float64
	}{
		{"A", 0, 0},
		{"B", 0, 1},
		{"C", 1, 1},
		{"D", 5, 5},
	} {
		_, err := d.SqlDB().ExecContext(ctx,
			"INSERT INTO cities (name, region, latitude, longitude) VALUES (?, 'X', ?, ?)",
			row.name, row.lat, row.lon)
		require.NoError(t, err)
	}
	for _, e := range [][2]string{{"a", "B"}, {"b", "c"}} {
		_, err := d.SqlDB().ExecContext(ctx, "INSERT INTO edges (a, b) VALUES (?, ?)", e[0], e[1])
		require.NoError(t, err)
	}
}

func TestOpen_MigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.db")
	d, err := citydb.Open(path)
	require.NoError(t, err)
	seed(t, d)
	require.NoError(t, d.Close())

	d, err = citydb.Open(path)
	require.NoError(t, err)
	defer d.Close()

	cs, err := d.Cities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cs, 4)
}

func TestLoad(t *testing.T) {
	d := openTestDB(t)
	seed(t, d)

	var src loader.Source = d
	g, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Names())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, "X", g.MustCity(0).Region)

	resp, err := search.Plan(g, search.Request{From: "A", To: "C"})
	require.NoError(t, err)
	for _, o := range resp.Outcomes {
		require.True(t, o.Found)
		assert.Equal(t, []string{"A", "B", "C"}, o.Route.Names())
	}
}

func TestEdges_RowOrder(t *testing.T) {
	d := openTestDB(t)
	seed(t, d)

	es, err := d.Edges(context.Background())
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, loader.EdgeRecord{A: "a", B: "B", Line: 1}, es[0])
	assert.Equal(t, loader.EdgeRecord{A: "b", B: "c", Line: 2}, es[1])
}

func TestLoad_UnknownEdgeEndpoint(t *testing.T) {
	d := openTestDB(t)
	seed(t, d)
	_, err := d.SqlDB().Exec("INSERT INTO edges (a, b) VALUES ('A', 'Atlantis')")
	require.NoError(t, err)

	_, err = d.Load(context.Background())
	assert.ErrorIs(t, err, loader.ErrUnknownCity)
}

func TestLoad_Empty(t *testing.T) {
	g, err := openTestDB(t).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestCities_DuplicateNameRejected(t *testing.T) {
	d := openTestDB(t)
	seed(t, d)
	_, err := d.SqlDB().Exec("INSERT INTO cities (name, latitude, longitude) VALUES ('A', 9, 9)")
	assert.Error(t, err)
}

func TestLoad_CanceledContext(t *testing.T) {
	d := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Load(ctx)
	assert.Error(t, err)
}
