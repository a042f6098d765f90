package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uhppoted/uhppoted-app-sheets-columns/connector"
	"github.com/uhppoted/uhppoted-app-sheets-columns/log"
	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

var GetCmd = Get{
	command: command{
		credentials: "",
		url:         "",
		area:        "",
		debug:       false,
	},

	file: filepath.Join(DEFAULT_WORKDIR, time.Now().Format("2006-01-02T150405.tsv")),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a Google Sheets worksheet range and stores it to a local TSV or XLSX file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet range to a TSV file (or XLSX file if the file extension is .xlsx)")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-sheets-columns --debug get --credentials "credentials.json" \`)
	fmt.Println(`                                            --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                            --range "Class Data!A1:E" \`)
	fmt.Println(`                                            --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV or XLSX file name. Defaults to '<workdir>/<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	t, err := cmd.fetch(options)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sheet")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := write(tmp, cmd.file, cmd.area, t); err != nil {
		return fmt.Errorf("error creating %v (%v)", cmd.file, err)
	}

	tmp.Close()

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	log.Infof("Retrieved %v to file %s", cmd.area, cmd.file)

	return nil
}

func write(f *os.File, file string, area string, t *table.Table) error {
	if strings.EqualFold(filepath.Ext(file), ".xlsx") {
		sheet := "Sheet1"
		if r, err := connector.ParseRange(area); err == nil && r.Sheet != "" {
			sheet = r.Sheet
		}

		return table.WriteXLSX(f, sheet, t)
	}

	return table.WriteTSV(f, t)
}
