// Package results reads EnergyPlus simulation output (eplusout.sql) files.
//
// EnergyPlus writes report variables into a SQLite database with three
// relevant tables: ReportDataDictionary (one row per variable), ReportData
// (values keyed by dictionary index), and Time (timestamps keyed by
// reporting interval). This package exposes variable discovery and
// timeseries extraction over that schema.
package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	// ErrNotResultsFile is returned when the file is missing or is not an
	// EnergyPlus output database.
	ErrNotResultsFile = errors.New("not an EnergyPlus results file")
	// ErrUnknownFrequency is returned for a reporting frequency outside the
	// EnergyPlus set.
	ErrUnknownFrequency = errors.New("unknown reporting frequency")
)

// Reporting frequencies accepted by Variables and Timeseries.
const (
	FreqTimestep  = "timestep"
	FreqHourly    = "hourly"
	FreqDaily     = "daily"
	FreqMonthly   = "monthly"
	FreqRunPeriod = "runperiod"
	FreqAnnual    = "annual"
)

// sqlFrequencies maps short frequency names to the values stored in
// ReportDataDictionary.ReportingFrequency.
var sqlFrequencies = map[string]string{
	FreqTimestep:  "Zone Timestep",
	FreqHourly:    "Hourly",
	FreqDaily:     "Daily",
	FreqMonthly:   "Monthly",
	FreqRunPeriod: "Run Period",
	FreqAnnual:    "Annual",
}

// intervalTypes maps short frequency names to Time.IntervalType codes.
var intervalTypes = map[string]int{
	FreqTimestep:  -1,
	FreqHourly:    1,
	FreqDaily:     2,
	FreqMonthly:   3,
	FreqRunPeriod: 4,
	FreqAnnual:    5,
}

// Variable identifies a report variable: a key (usually a zone or surface
// name), the variable name, and its units.
type Variable struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Units string `json:"units"`
}

// Series is one extracted timeseries.
type Series struct {
	Variable   Variable    `json:"variable"`
	Frequency  string      `json:"frequency"`
	Timestamps []time.Time `json:"timestamps"`
	Values     []float64   `json:"values"`
}

// Reader reads a single EnergyPlus output database.
type Reader struct {
	db *sql.DB
}

// Open validates and opens an eplusout.sql file. The file must exist and
// contain the ReportData table.
func Open(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotResultsFile, path)
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	var name string
	err = db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='ReportData'").Scan(&name)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotResultsFile, path)
	}

	return &Reader{db: db}, nil
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Variables lists the report variables recorded at the given frequency.
func (r *Reader) Variables(ctx context.Context, frequency string) ([]Variable, error) {
	sqlFreq, ok := sqlFrequencies[strings.ToLower(frequency)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, frequency)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT KeyValue, Name, Units FROM ReportDataDictionary WHERE ReportingFrequency = ?",
		sqlFreq)
	if err != nil {
		return nil, fmt.Errorf("query data dictionary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vars []Variable
	for rows.Next() {
		var v Variable
		if err := rows.Scan(&v.Key, &v.Name, &v.Units); err != nil {
			return nil, fmt.Errorf("scan data dictionary: %w", err)
		}
		vars = append(vars, v)
	}
	return vars, rows.Err()
}

// Timeseries extracts every series matching the variable filter at the
// given frequency. Empty filter fields match anything; with alike set,
// non-empty fields match as substrings (SQL LIKE) instead of exactly.
func (r *Reader) Timeseries(ctx context.Context, filter Variable, frequency string, alike bool) ([]Series, error) {
	freq := strings.ToLower(frequency)
	sqlFreq, ok := sqlFrequencies[freq]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, frequency)
	}

	stmt, params := dictionaryQuery(filter, sqlFreq, alike)
	rows, err := r.db.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("query data dictionary: %w", err)
	}

	type dictRow struct {
		id int64
		v  Variable
	}
	var dict []dictRow
	for rows.Next() {
		var d dictRow
		if err := rows.Scan(&d.id, &d.v.Key, &d.v.Name, &d.v.Units); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan data dictionary: %w", err)
		}
		dict = append(dict, d)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	if len(dict) == 0 {
		return nil, nil
	}

	timestamps, err := r.timestamps(ctx, freq)
	if err != nil {
		return nil, err
	}

	series := make([]Series, 0, len(dict))
	for _, d := range dict {
		values, err := r.values(ctx, d.id)
		if err != nil {
			return nil, err
		}
		// A partially written file can hold fewer values than timestamps
		// (or the reverse); both arrays are cut to the common length so
		// they always line up index for index.
		n := min(len(timestamps), len(values))
		series = append(series, Series{
			Variable:   d.v,
			Frequency:  freq,
			Timestamps: timestamps[:n],
			Values:     values[:n],
		})
	}
	return series, nil
}

// dictionaryQuery builds the ReportDataDictionary lookup for the non-empty
// filter fields.
func dictionaryQuery(filter Variable, sqlFreq string, alike bool) (string, []any) {
	stmt := "SELECT ReportDataDictionaryIndex, KeyValue, Name, Units" +
		" FROM ReportDataDictionary WHERE ReportingFrequency = ?"
	params := []any{sqlFreq}

	op := " = ?"
	if alike {
		op = " LIKE ?"
	}
	columns := []struct{ column, value string }{
		{"KeyValue", filter.Key},
		{"Name", filter.Name},
		{"Units", filter.Units},
	}
	for _, c := range columns {
		column, value := c.column, c.value
		if value == "" {
			continue
		}
		stmt += " AND " + column + op
		if alike {
			value = "%" + value + "%"
		}
		params = append(params, value)
	}
	return stmt, params
}

func (r *Reader) values(ctx context.Context, dictIndex int64) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT Value FROM ReportData WHERE ReportDataDictionaryIndex = ?"+
			" ORDER BY ReportDataIndex", dictIndex)
	if err != nil {
		return nil, fmt.Errorf("query report data: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan report data: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// timestamps reads the Time table for the frequency's interval type.
// EnergyPlus reports hour 24 for end-of-day rows and year 0 when the run
// period has no calendar year; both are normalized here.
func (r *Reader) timestamps(ctx context.Context, freq string) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT Year, Month, Day, Hour, Minute FROM Time WHERE IntervalType = ?"+
			" ORDER BY TimeIndex",
		intervalTypes[freq])
	if err != nil {
		return nil, fmt.Errorf("query time: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []time.Time
	for rows.Next() {
		var year, month, day, hour, minute int
		if err := rows.Scan(&year, &month, &day, &hour, &minute); err != nil {
			return nil, fmt.Errorf("scan time: %w", err)
		}
		if year == 0 {
			year = 2002
		}
		var ts time.Time
		if hour == 24 {
			ts = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		} else {
			ts = time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}
