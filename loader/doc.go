// Package loader builds a core.Graph from whitespace-delimited record files
// and reads the two-line query file consumed by the driver.
//
// City records hold four fields per line:
//
//	<name> <region> <latitude> <longitude>
//
// Edge records hold two city names per line. Edge endpoints resolve
// case-insensitively against the loaded cities. Blank lines are skipped in
// both files; extra trailing fields are ignored.
//
// Any malformed record aborts the load with ErrMalformedRecord wrapped with
// the file name and line number. A partially loaded graph is never returned.
package loader
