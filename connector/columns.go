package connector

import (
	"fmt"
)

// Columns maps each header label to the values in that column, one per data row. If a label
// is repeated in the header row the last column with that label wins.
type Columns map[string][]string

// RaggedRows selects how a data row that is shorter than the header row is handled.
type RaggedRows int

const (
	// Pad fills the missing trailing cells with "". The Sheets API drops trailing empty
	// cells so short rows are normal for sparse worksheets.
	Pad RaggedRows = iota

	// Strict fails the fetch with a ShapeMismatchError.
	Strict
)

func (r RaggedRows) String() string {
	if r == Strict {
		return "strict"
	}

	return "pad"
}

// reshape converts a grid of rows (header first) into a column mapping. It also returns
// the distinct header labels in the order they first appear.
func reshape(rows [][]any, ragged RaggedRows) ([]string, Columns, error) {
	if len(rows) == 0 {
		return nil, nil, fetchError(EmptyRangeError, ErrEmptyRange)
	}

	if len(rows) == 1 {
		return nil, nil, fetchError(EmptyRangeError, fmt.Errorf("%w (no rows below the header row)", ErrEmptyRange))
	}

	// .. build index
	header := rows[0]
	if len(header) == 0 {
		return nil, nil, fetchError(ShapeMismatchError, fmt.Errorf("%w (missing/invalid header row)", ErrShapeMismatch))
	}

	index := map[string]int{}
	order := []string{}
	for i, v := range header {
		k := cell(v)
		if _, ok := index[k]; !ok {
			order = append(order, k)
		}

		index[k] = i
	}

	// ... columns
	columns := Columns{}
	for _, k := range order {
		columns[k] = make([]string, 0, len(rows)-1)
	}

	for r, row := range rows[1:] {
		if len(row) < len(header) && ragged == Strict {
			err := fmt.Errorf("%w (data row %v has %v cells, expected %v)", ErrShapeMismatch, r+1, len(row), len(header))

			return nil, nil, fetchError(ShapeMismatchError, err)
		}

		for _, k := range order {
			v := ""
			if ix := index[k]; ix < len(row) {
				v = cell(row[ix])
			}

			columns[k] = append(columns[k], v)
		}
	}

	return order, columns, nil
}

func cell(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
