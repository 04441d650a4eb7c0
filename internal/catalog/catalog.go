// Package catalog loads star catalogues from CSV.
//
// A catalogue has a header row naming at least the columns name,
// right_ascension (hours), declination (degrees) and magnitude. Column
// order is free and extra columns are ignored. The headers used by the
// older night-sky format (ra_deg, dec_deg, mag) are accepted as well; ra_deg
// values are converted to hours.
//
// Malformed data rows are skipped and reported in Result.Skipped unless
// Options.Strict is set, in which case the first one aborts the load. A
// missing header or required column always aborts.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/errors"
)

//go:embed bright_stars.csv
var brightStars []byte

// DefaultSource names the bundled catalogue in logs and errors.
const DefaultSource = "bundled:bright_stars.csv"

// Canonical column names.
const (
	ColumnName        = "name"
	ColumnRA          = "right_ascension"
	ColumnDeclination = "declination"
	ColumnMagnitude   = "magnitude"
)

// Options controls how malformed rows are handled.
type Options struct {
	// Strict aborts on the first malformed data row instead of skipping it.
	Strict bool
}

// Result is the outcome of loading a catalogue.
type Result struct {
	Source  string
	Stars   []astro.Star
	Skipped []*errors.CatalogueFormatError
}

// Default parses the bundled bright star catalogue.
func Default(opts Options) (*Result, error) {
	return Parse(bytes.NewReader(brightStars), DefaultSource, opts)
}

// Load reads the catalogue at path. An empty path loads the bundled
// catalogue.
func Load(path string, opts Options) (*Result, error) {
	if path == "" {
		return Default(opts)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewCatalogueNotFoundError(path, err)
		}
		return nil, fmt.Errorf("open catalogue %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, opts)
}

// columns maps required fields onto record indexes.
type columns struct {
	name, ra, dec, mag int
	raHeader           string
	decHeader          string
	magHeader          string
	raInDegrees        bool
	minFields          int
}

// aliases lists accepted headers per field, canonical name first.
var aliases = map[string][]string{
	ColumnName:        {"name"},
	ColumnRA:          {"right_ascension", "ra_hours", "ra_deg"},
	ColumnDeclination: {"declination", "dec_deg"},
	ColumnMagnitude:   {"magnitude", "mag"},
}

// Parse reads a catalogue from r. source is used in error messages.
func Parse(r io.Reader, source string, opts Options) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewCatalogueFormatError(source, 1, "", "", "missing header row")
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			fe := errors.NewCatalogueFormatError(source, pe.StartLine, "", "", "unreadable header row")
			fe.Err = err
			return nil, fe
		}
		return nil, fmt.Errorf("read catalogue %s: %w", source, err)
	}

	cols, err := resolveColumns(header, source)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Source: source,
		Stars:  make([]astro.Star, 0),
	}

	reject := func(fe *errors.CatalogueFormatError) error {
		if opts.Strict {
			return fe
		}
		res.Skipped = append(res.Skipped, fe)
		return nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read catalogue %s: %w", source, err)
			}
			fe := errors.NewCatalogueFormatError(source, pe.StartLine, "", "", pe.Err.Error())
			fe.Err = err
			if err := reject(fe); err != nil {
				return nil, err
			}
			continue
		}

		line, _ := reader.FieldPos(0)
		star, fe := parseRow(record, cols, source, line)
		if fe != nil {
			if err := reject(fe); err != nil {
				return nil, err
			}
			continue
		}
		res.Stars = append(res.Stars, star)
	}

	return res, nil
}

func resolveColumns(header []string, source string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	find := func(field string) (int, string, error) {
		for _, alias := range aliases[field] {
			if i, ok := index[alias]; ok {
				return i, alias, nil
			}
		}
		return -1, "", errors.NewCatalogueFormatError(source, 1, field, "", "required column missing from header")
	}

	var cols columns
	var err error
	if cols.name, _, err = find(ColumnName); err != nil {
		return cols, err
	}
	if cols.ra, cols.raHeader, err = find(ColumnRA); err != nil {
		return cols, err
	}
	if cols.dec, cols.decHeader, err = find(ColumnDeclination); err != nil {
		return cols, err
	}
	if cols.mag, cols.magHeader, err = find(ColumnMagnitude); err != nil {
		return cols, err
	}
	cols.raInDegrees = cols.raHeader == "ra_deg"

	for _, i := range []int{cols.name, cols.ra, cols.dec, cols.mag} {
		if i+1 > cols.minFields {
			cols.minFields = i + 1
		}
	}
	return cols, nil
}

func parseRow(record []string, cols columns, source string, line int) (astro.Star, *errors.CatalogueFormatError) {
	if len(record) < cols.minFields {
		return astro.Star{}, errors.NewCatalogueFormatError(source, line, "", "",
			fmt.Sprintf("expected at least %d fields, got %d", cols.minFields, len(record)))
	}

	name := strings.TrimSpace(record[cols.name])
	if name == "" {
		return astro.Star{}, errors.NewCatalogueFormatError(source, line, ColumnName, "", "empty star name")
	}

	ra, fe := parseNumber(record[cols.ra], cols.raHeader, source, line)
	if fe != nil {
		return astro.Star{}, fe
	}
	if cols.raInDegrees {
		ra = astro.NormalizeHours(astro.DegreesToHours(ra))
	}
	if !astro.ValidRA(ra) {
		return astro.Star{}, errors.NewCatalogueFormatError(source, line, cols.raHeader,
			strings.TrimSpace(record[cols.ra]), "right ascension out of range")
	}

	dec, fe := parseNumber(record[cols.dec], cols.decHeader, source, line)
	if fe != nil {
		return astro.Star{}, fe
	}
	if !astro.ValidDec(dec) {
		return astro.Star{}, errors.NewCatalogueFormatError(source, line, cols.decHeader,
			strings.TrimSpace(record[cols.dec]), "declination out of range")
	}

	mag, fe := parseNumber(record[cols.mag], cols.magHeader, source, line)
	if fe != nil {
		return astro.Star{}, fe
	}

	return astro.Star{Name: name, RAHours: ra, DecDeg: dec, Mag: mag}, nil
}

func parseNumber(raw, column, source string, line int) (float64, *errors.CatalogueFormatError) {
	val := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fe := errors.NewCatalogueFormatError(source, line, column, val, "not a number")
		fe.Err = err
		return 0, fe
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewCatalogueFormatError(source, line, column, val, "not a finite number")
	}
	return f, nil
}
