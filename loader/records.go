package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citysearch/city"
)

// eachRecord calls fn with the fields and 1-based line number of every
// non-blank line of r.
func eachRecord(r io.Reader, fn func(fields []string, line int) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(fields, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// ReadCities parses city records in file order.
func ReadCities(r io.Reader) ([]city.City, error) {
	var out []city.City
	err := eachRecord(r, func(f []string, line int) error {
		if len(f) < cityFields {
			return fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedRecord, line, cityFields, len(f))
		}
		lat, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: latitude %q", ErrMalformedRecord, line, f[2])
		}
		lon, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: longitude %q", ErrMalformedRecord, line, f[3])
		}
		c := city.New(f[0], lat, lon)
		c.Region = f[1]
		out = append(out, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadEdges parses edge records in file order.
func ReadEdges(r io.Reader) ([]EdgeRecord, error) {
	var out []EdgeRecord
	err := eachRecord(r, func(f []string, line int) error {
		if len(f) < edgeFields {
			return fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedRecord, line, edgeFields, len(f))
		}
		out = append(out, EdgeRecord{A: f[0], B: f[1], Line: line})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadQuery reads the start and destination names from the first two lines of r.
func ReadQuery(r io.Reader) (Query, error) {
	scanner := bufio.NewScanner(r)
	var names [2]string
	for i := range names {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Query{}, err
			}

			return Query{}, fmt.Errorf("%w: missing line %d", ErrMalformedQuery, i+1)
		}
		names[i] = strings.TrimSpace(scanner.Text())
		if names[i] == "" {
			return Query{}, fmt.Errorf("%w: line %d is empty", ErrMalformedQuery, i+1)
		}
	}

	return Query{From: names[0], To: names[1]}, nil
}
