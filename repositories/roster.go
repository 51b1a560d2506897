// Data-access layer for the roster resource. Repositories only hand back raw
// names (first field of each record); normalization belongs to core.Roster.
package repositories

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RosterRepository yields the raw participant names of one roster resource.
type RosterRepository interface {
	Names(ctx context.Context) ([]string, error)
}

// parseRoster reads a tabular resource and returns the first field of every
// record. ext selects the format: ".xlsx"/".xlsm" use the first worksheet,
// anything else is read as CSV.
func parseRoster(r io.Reader, ext string, hasHeader bool) ([]string, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(ext) {
	case ".xlsx", ".xlsm":
		records, err = readSheet(r)
	default:
		records, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}
	if hasHeader && len(records) > 0 {
		records = records[1:] // header row dropped only when configured
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		names = append(names, rec[0]) // name is the first field
	}
	return names, nil
}

// utf8BOM prefixes spreadsheet "CSV UTF-8" exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // records may have extra columns
	cr.LazyQuotes = true    // tolerate stray quotes in hand-edited lists
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

func readSheet(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no worksheet found")
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheet, err)
	}
	return rows, nil
}
