package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/uhppoted-app-sheets-columns/credentials"
	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

func TestSpreadsheetID(t *testing.T) {
	tests := map[string]string{
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":           "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"abc123": "abc123",
		" abc123 ": "abc123",
	}

	for url, expected := range tests {
		id, err := spreadsheetID(url)
		if err != nil {
			t.Fatalf("Unexpected error for '%v' (%v)", url, err)
		}

		if id != expected {
			t.Errorf("Incorrect spreadsheet ID for '%v' - expected %v, got %v", url, expected, id)
		}
	}
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	for _, url := range []string{"https://example.com/spreadsheets/d/qwerty", "qwerty uiop"} {
		if _, err := spreadsheetID(url); err == nil {
			t.Errorf("Expected error for '%v'", url)
		}
	}
}

func TestDescriptor(t *testing.T) {
	t.Setenv(CREDENTIALS_ENV, "")

	cmd := command{credentials: "credentials.json"}
	if d := cmd.descriptor(); d.String() != "credentials.json" {
		t.Errorf("Incorrect descriptor - expected %v, got %v", "credentials.json", d)
	}

	cmd = command{}
	if d := cmd.descriptor(); d.String() != DEFAULT_CREDENTIALS {
		t.Errorf("Incorrect descriptor - expected %v, got %v", DEFAULT_CREDENTIALS, d)
	}

	t.Setenv(CREDENTIALS_ENV, `{ "type": "service_account", "client_email": "sheets@qwerty.iam.gserviceaccount.com" }`)

	d := cmd.descriptor()
	if d.String() != "<inline:sheets@qwerty.iam.gserviceaccount.com>" {
		t.Errorf("Incorrect descriptor - expected inline key, got %v", d)
	}

	if d.String() == credentials.FromFile(DEFAULT_CREDENTIALS).String() {
		t.Errorf("Expected environment key to override default credentials file")
	}
}

func TestFetchWithMissingOptions(t *testing.T) {
	if _, err := (&command{area: "Sheet1!A1:B3"}).fetch(&Options{}); err == nil {
		t.Errorf("Expected error for missing --url")
	}

	if _, err := (&command{url: "abc123"}).fetch(&Options{}); err == nil {
		t.Errorf("Expected error for missing --range")
	}

	if _, err := (&command{url: "abc123", area: "!A1:B3"}).fetch(&Options{}); err == nil {
		t.Errorf("Expected error for invalid --range")
	}
}

func TestWriteTSVFile(t *testing.T) {
	expected := "Name\tAge\nAnn\t30\nBo\t25\n"

	data := table.Table{
		Header:  []string{"Name", "Age"},
		Records: [][]string{{"Ann", "30"}, {"Bo", "25"}},
	}

	file := filepath.Join(t.TempDir(), "sheet.tsv")
	f, err := os.Create(file)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if err := write(f, file, "Sheet1!A1:B3", &data); err != nil {
		t.Fatalf("Unexpected error writing TSV file (%v)", err)
	}

	f.Close()

	bytes, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if string(bytes) != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, string(bytes))
	}
}

func TestWriteXLSXFile(t *testing.T) {
	tests := []struct {
		area  string
		sheet string
	}{
		{"Sample Sheet!A1:B3", "Sample Sheet"},
		{"'Bob''s Sheet'!A:B", "Bob's Sheet"},
		{"A1:B3", "Sheet1"},
	}

	expected := [][]string{
		{"Name", "Age"},
		{"Ann", "30"},
		{"Bo", "25"},
	}

	data := table.Table{
		Header:  []string{"Name", "Age"},
		Records: [][]string{{"Ann", "30"}, {"Bo", "25"}},
	}

	for _, test := range tests {
		file := filepath.Join(t.TempDir(), "sheet.xlsx")
		f, err := os.Create(file)
		if err != nil {
			t.Fatalf("%v", err)
		}

		if err := write(f, file, test.area, &data); err != nil {
			t.Fatalf("Unexpected error writing XLSX file for '%v' (%v)", test.area, err)
		}

		f.Close()

		workbook, err := excelize.OpenFile(file)
		if err != nil {
			t.Fatalf("Error reopening XLSX file for '%v' (%v)", test.area, err)
		}

		if sheets := workbook.GetSheetList(); !reflect.DeepEqual(sheets, []string{test.sheet}) {
			t.Errorf("Incorrect worksheets for '%v'\n   expected: %v\n   got:      %v\n", test.area, []string{test.sheet}, sheets)
		}

		rows, err := workbook.GetRows(test.sheet)
		if err != nil {
			t.Fatalf("Error reading worksheet '%v' (%v)", test.sheet, err)
		}

		if !reflect.DeepEqual(rows, expected) {
			t.Errorf("Incorrect worksheet for '%v'\n   expected: %v\n   got:      %v\n", test.area, expected, rows)
		}

		workbook.Close()
	}
}

func TestDescribeOutput(t *testing.T) {
	var b strings.Builder

	summaries := []table.Summary{
		{Column: "Age", Count: 2, Mean: 27.5, Std: 3.536, Min: 25, Q1: 25, Median: 27.5, Q3: 30, Max: 30},
	}

	if err := describe(&b, summaries); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and 1 summary line, got %q", b.String())
	}

	if fields := strings.Fields(lines[1]); len(fields) != 9 || fields[0] != "Age" || fields[1] != "2" || fields[2] != "27.5" {
		t.Errorf("Incorrect summary line - got %q", lines[1])
	}
}
