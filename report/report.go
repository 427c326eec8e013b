package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/search"
)

// Section is one algorithm's result in a Document.
type Section struct {
	Algorithm string   `json:"algorithm"`
	Title     string   `json:"title"`
	Found     bool     `json:"found"`
	Cities    []string `json:"cities,omitempty"`
	Hops      int      `json:"hops"`
	Distance  float64  `json:"distance"`
	Expanded  int      `json:"expanded"`
}

// Document is the JSON form of a search.Response.
type Document struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Missing []string  `json:"missing,omitempty"`
	Results []Section `json:"results"`
}

// NewDocument converts resp.
func NewDocument(resp *search.Response) Document {
	doc := Document{
		From:    resp.Request.From,
		To:      resp.Request.To,
		Missing: resp.Missing,
		Results: make([]Section, 0, len(resp.Outcomes)),
	}
	for _, o := range resp.Outcomes {
		s := Section{
			Algorithm: o.Algorithm.String(),
			Title:     o.Algorithm.Title(),
			Found:     o.Found,
			Expanded:  o.Expanded,
		}
		if o.Found {
			s.Cities = o.Route.Names()
			s.Hops = o.Route.Hops
			s.Distance = o.Route.Distance
		}
		doc.Results = append(doc.Results, s)
	}

	return doc
}

// Text renders resp in the report file layout.
func Text(resp *search.Response) string {
	var b strings.Builder
	for _, name := range resp.Missing {
		fmt.Fprintf(&b, "No such city: %s\n", name)
	}
	for i, o := range resp.Outcomes {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeSection(&b, o)
	}

	return b.String()
}

func writeSection(b *strings.Builder, o *search.Outcome) {
	fmt.Fprintf(b, "%s Results:\n", o.Algorithm.Title())
	if !o.Found {
		fmt.Fprintf(b, "No path found from %s to %s\n", o.Start.Name, o.Goal.Name)
		return
	}
	for _, c := range o.Route.Cities {
		b.WriteString(c.Name)
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, "Hops: %d\n", o.Route.Hops)
	fmt.Fprintf(b, "Distance: %s miles\n", city.FormatFloat(o.Route.Distance))
}

// WriteText writes Text(resp) to w.
func WriteText(w io.Writer, resp *search.Response) error {
	_, err := io.WriteString(w, Text(resp))

	return err
}

// WriteJSON encodes NewDocument(resp) to w.
func WriteJSON(w io.Writer, resp *search.Response) error {
	return json.NewEncoder(w).Encode(NewDocument(resp))
}

// WriteFile creates (or truncates) path and writes the text report.
func WriteFile(path string, resp *search.Response) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WriteText(f, resp); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}

	return f.Close()
}
