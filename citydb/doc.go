// Package citydb is a SQLite-backed records source for the city graph.
//
// The database holds two tables:
//
//	cities(id INTEGER PRIMARY KEY, name TEXT UNIQUE, region TEXT, latitude REAL, longitude REAL)
//	edges(id INTEGER PRIMARY KEY, a TEXT, b TEXT)
//
// Cities are loaded in id order and edges in id order, so a database filled
// row by row from city.dat/edge.dat yields the same indices as the files.
// Edge endpoints resolve case-insensitively, as in package loader.
package citydb
