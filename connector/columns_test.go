package connector

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestReshape(t *testing.T) {
	expected := Columns{
		"Name": {"Ann", "Bo"},
		"Age":  {"30", "25"},
	}

	data := [][]any{
		{"Name", "Age"},
		{"Ann", "30"},
		{"Bo", "25"},
	}

	header, columns, err := reshape(data, Pad)
	if err != nil {
		t.Fatalf("Unexpected error returned from reshape (%v)", err)
	}

	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, columns)
	}

	if !reflect.DeepEqual(header, []string{"Name", "Age"}) {
		t.Errorf("Incorrect header order - got %v", header)
	}
}

func TestReshapeWellFormedGrids(t *testing.T) {
	for M := 1; M <= 4; M++ {
		for N := 1; N <= 5; N++ {
			grid := [][]any{}

			header := []any{}
			for j := 0; j < M; j++ {
				header = append(header, fmt.Sprintf("C%v", j))
			}

			grid = append(grid, header)
			for i := 0; i < N; i++ {
				row := []any{}
				for j := 0; j < M; j++ {
					row = append(row, fmt.Sprintf("%v:%v", i, j))
				}

				grid = append(grid, row)
			}

			_, columns, err := reshape(grid, Strict)
			if err != nil {
				t.Fatalf("%vx%v: unexpected error (%v)", N, M, err)
			}

			if len(columns) != M {
				t.Errorf("%vx%v: expected %v columns, got %v", N, M, M, len(columns))
			}

			for j := 0; j < M; j++ {
				column := columns[grid[0][j].(string)]
				if len(column) != N {
					t.Errorf("%vx%v: expected %v values in column %v, got %v", N, M, N, j, len(column))
					continue
				}

				for i := 0; i < N; i++ {
					if column[i] != grid[i+1][j] {
						t.Errorf("%vx%v: incorrect value at [%v][%v] - expected %v, got %v", N, M, i, j, grid[i+1][j], column[i])
					}
				}
			}
		}
	}
}

func TestReshapeWithEmptyGrid(t *testing.T) {
	_, _, err := reshape([][]any{}, Pad)

	if !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("Expected 'empty range' error, got %v", err)
	}

	var ferr *FetchError
	if !errors.As(err, &ferr) || ferr.Kind != EmptyRangeError {
		t.Errorf("Expected EmptyRangeError, got %v", err)
	}
}

func TestReshapeWithHeaderOnly(t *testing.T) {
	_, _, err := reshape([][]any{{"A", "B"}}, Pad)

	if !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("Expected 'empty range' error, got %v", err)
	}
}

func TestReshapeWithRaggedRowsPadded(t *testing.T) {
	expected := Columns{
		"A": {"1", "4"},
		"B": {"2", "5"},
		"C": {"", "6"},
	}

	data := [][]any{
		{"A", "B", "C"},
		{"1", "2"},
		{"4", "5", "6", "7"},
	}

	_, columns, err := reshape(data, Pad)
	if err != nil {
		t.Fatalf("Unexpected error returned from reshape (%v)", err)
	}

	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, columns)
	}
}

func TestReshapeWithRaggedRowsStrict(t *testing.T) {
	data := [][]any{
		{"A", "B", "C"},
		{"1", "2"},
	}

	_, _, err := reshape(data, Strict)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected 'shape mismatch' error, got %v", err)
	}

	var ferr *FetchError
	if !errors.As(err, &ferr) || ferr.Kind != ShapeMismatchError {
		t.Errorf("Expected ShapeMismatchError, got %v", err)
	}
}

func TestReshapeWithDuplicateColumns(t *testing.T) {
	expected := Columns{
		"A": {"2", "4"},
	}

	data := [][]any{
		{"A", "A"},
		{"1", "2"},
		{"3", "4"},
	}

	header, columns, err := reshape(data, Pad)
	if err != nil {
		t.Fatalf("Unexpected error returned from reshape (%v)", err)
	}

	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, columns)
	}

	if !reflect.DeepEqual(header, []string{"A"}) {
		t.Errorf("Incorrect header - got %v", header)
	}
}

func TestReshapeWithoutHeaders(t *testing.T) {
	data := [][]any{
		{},
		{"1", "2"},
	}

	if _, _, err := reshape(data, Pad); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected error return for missing headers, got %v", err)
	}
}

func TestReshapeWithNonStringCells(t *testing.T) {
	expected := Columns{
		"Card Number": {"6001001"},
		"PIN":         {"7531"},
		"Enabled":     {"true"},
		"Note":        {""},
	}

	data := [][]any{
		{"Card Number", "PIN", "Enabled", "Note"},
		{"6001001", float64(7531), true, nil},
	}

	_, columns, err := reshape(data, Pad)
	if err != nil {
		t.Fatalf("Unexpected error returned from reshape (%v)", err)
	}

	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, columns)
	}
}

func TestFetchErrorMessage(t *testing.T) {
	_, _, err := reshape(nil, Pad)

	if err == nil || err.Error() != "An error has occurred: the spreadsheet/sheet range is empty" {
		t.Errorf("Incorrect error message - got %v", err)
	}
}
