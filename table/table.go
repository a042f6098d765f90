package table

import (
	"fmt"
	"sort"

	api "github.com/uhppoted/uhppoted-lib/acl"
)

// Table is a header row plus records, one record per worksheet data row.
type Table = api.Table

// FromColumns builds a table from a column mapping. The columns are ordered as in header,
// or alphabetically if header is empty. All columns must have the same number of values.
func FromColumns(header []string, columns map[string][]string) (*Table, error) {
	if len(header) == 0 {
		for k := range columns {
			header = append(header, k)
		}

		sort.Strings(header)
	}

	// ... validate
	rows := -1
	for _, h := range header {
		column, ok := columns[h]
		if !ok {
			return nil, fmt.Errorf("missing column '%s'", h)
		}

		if rows < 0 {
			rows = len(column)
		} else if len(column) != rows {
			return nil, fmt.Errorf("column '%s' has %v values, expected %v", h, len(column), rows)
		}
	}

	// ... records
	records := [][]string{}
	for i := 0; i < rows; i++ {
		record := make([]string, len(header))
		for j, h := range header {
			record[j] = columns[h][i]
		}

		records = append(records, record)
	}

	return &Table{
		Header:  append([]string{}, header...),
		Records: records,
	}, nil
}

// ToColumns converts a table back to a column mapping.
func ToColumns(t *Table) map[string][]string {
	columns := map[string][]string{}

	for j, h := range t.Header {
		column := make([]string, 0, len(t.Records))
		for _, record := range t.Records {
			v := ""
			if j < len(record) {
				v = record[j]
			}

			column = append(column, v)
		}

		columns[h] = column
	}

	return columns
}

// Column returns the values for a single column.
func Column(t *Table, name string) ([]string, error) {
	for j, h := range t.Header {
		if h == name {
			column := make([]string, 0, len(t.Records))
			for _, record := range t.Records {
				if j < len(record) {
					column = append(column, record[j])
				} else {
					column = append(column, "")
				}
			}

			return column, nil
		}
	}

	return nil, fmt.Errorf("no column '%s'", name)
}
