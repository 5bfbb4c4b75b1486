// Package donationcsv converts donations to and from the spreadsheet layout
// treasurers keep: one donation per row under a fixed header.
package donationcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/phillip/youth-portal/models"
)

const (
	ColDonorName = "Donor Name"
	ColAmount    = "Amount"
	ColMethod    = "Method"
	ColStatus    = "Status"
	ColDate      = "Date"
	ColReference = "Reference Number"
	ColNotes     = "Notes"
)

// Header is the fixed export column order.
var Header = []string{ColDonorName, ColAmount, ColMethod, ColStatus, ColDate, ColReference, ColNotes}

var dateLayouts = []string{time.RFC3339, "2006-01-02", "01/02/2006"}

// RowError names the data row that could not be parsed, counted from the line below
// the header.
type RowError struct {
	Row int
	Msg string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
}

var ErrMissingColumn = errors.New("missing required column")

// Write emits the header followed by one row per donation.
func Write(w io.Writer, donations []models.Donation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, d := range donations {
		record := []string{
			d.DonorName,
			strconv.FormatFloat(d.Amount, 'f', -1, 64),
			string(d.Method),
			string(d.Status),
			d.Date.UTC().Format(time.RFC3339Nano),
			d.ReferenceNumber,
			d.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses an uploaded sheet. Columns are located by header name, case-insensitively,
// so extra or reordered columns are tolerated. A missing status means Completed and a
// missing date means now. Every row is validated against the donation model. RowError
// numbers rows by their line in the sheet, so blank lines are counted.
func Read(r io.Reader, now time.Time) ([]models.Donation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{ColDonorName, ColAmount, ColMethod} {
		if _, ok := cols[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[strings.ToLower(name)]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	headerLine, _ := cr.FieldPos(0)

	donations := []models.Donation{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			row := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				row = parseErr.StartLine - headerLine
			}
			return nil, &RowError{Row: row, Msg: err.Error()}
		}
		if blank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		row := line - headerLine

		d, err := parseRow(record, field, now)
		if err != nil {
			return nil, &RowError{Row: row, Msg: err.Error()}
		}
		donations = append(donations, d)
	}
	return donations, nil
}

func parseRow(record []string, field func([]string, string) string, now time.Time) (models.Donation, error) {
	var d models.Donation

	d.DonorName = field(record, ColDonorName)
	if d.DonorName == "" {
		return d, errors.New("donor name is required")
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(field(record, ColAmount), ",", ""), 64)
	if err != nil {
		return d, fmt.Errorf("invalid amount %q", field(record, ColAmount))
	}
	if amount < 0 {
		return d, errors.New("amount must not be negative")
	}
	d.Amount = amount

	method, ok := models.ParseDonationMethod(field(record, ColMethod))
	if !ok {
		return d, fmt.Errorf("invalid method %q", field(record, ColMethod))
	}
	d.Method = method

	d.Status = models.DonationCompleted
	if raw := field(record, ColStatus); raw != "" {
		status, ok := models.ParseDonationStatus(raw)
		if !ok {
			return d, fmt.Errorf("invalid status %q", raw)
		}
		d.Status = status
	}

	d.Date = now
	if raw := field(record, ColDate); raw != "" {
		date, err := ParseDate(raw)
		if err != nil {
			return d, err
		}
		d.Date = date
	}

	d.ReferenceNumber = field(record, ColReference)
	d.Notes = field(record, ColNotes)
	if err := models.Validate(&d); err != nil {
		return d, err
	}
	return d, nil
}

// ParseDate accepts RFC3339, YYYY-MM-DD and MM/DD/YYYY.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339, YYYY-MM-DD or MM/DD/YYYY", raw)
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
