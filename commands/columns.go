package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

var ColumnsCmd = Columns{
	command: command{
		credentials: "",
		url:         "",
		area:        "",
		debug:       false,
	},

	out: os.Stdout,
}

type Columns struct {
	command
	out io.Writer
}

func (cmd *Columns) Name() string {
	return "columns"
}

func (cmd *Columns) Description() string {
	return "Retrieves a Google Sheets worksheet range and prints it as a JSON object of columns keyed by header"
}

func (cmd *Columns) Usage() string {
	return "--credentials <file> --url <url> --range <range>"
}

func (cmd *Columns) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] columns [options] --url <URL> --range <range>\n", APP)
	fmt.Println()
	fmt.Println("  Prints a Google Sheets worksheet range as JSON, with the first row of the range as the keys")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-sheets-columns columns --credentials "credentials.json" \`)
	fmt.Println(`                                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                        --range "Sample Sheet!A:B"`)
	fmt.Println()
}

func (cmd *Columns) FlagSet() *flag.FlagSet {
	return cmd.flagset("columns")
}

func (cmd *Columns) Execute(args ...any) error {
	options := args[0].(*Options)

	t, err := cmd.fetch(options)
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(table.ToColumns(t), "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "%s\n", bytes)

	return nil
}
