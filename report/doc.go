// Package report renders a search.Response.
//
// Text is the report file layout: one section per algorithm in run order,
// each with a title line, the route's city names one per line, then
//
//	Hops: <n>
//	Distance: <d> miles
//
// or a single "No path found from <start> to <goal>" line. Sections are
// separated by a blank line. Unresolved query names produce one
// "No such city: <name>" line each and no sections.
//
// Document is the JSON shape served over HTTP.
package report
