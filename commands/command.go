package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/uhppoted/uhppoted-app-sheets-columns/connector"
	"github.com/uhppoted/uhppoted-app-sheets-columns/credentials"
	"github.com/uhppoted/uhppoted-app-sheets-columns/log"
	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

const APP = "uhppoted-app-sheets-columns"

// CREDENTIALS_ENV is the environment variable for an inline service account key, used if
// --credentials is not specified.
const CREDENTIALS_ENV = "UHPPOTED_SHEETS_CREDENTIALS"

type Options struct {
	Debug bool
}

type command struct {
	credentials string
	url         string
	area        string
	strict      bool
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Path for the service account 'credentials.json' file. Defaults to $%v or %v", CREDENTIALS_ENV, DEFAULT_CREDENTIALS))
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL (or spreadsheet ID)")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Sheet1!A1:B3', 'Sheet1' or 'A1:B3'")
	flagset.BoolVar(&cmd.strict, "strict", cmd.strict, "Fails if a row is shorter than the header row (short rows are padded with blanks by default)")

	return flagset
}

// fetch validates the common options, then retrieves the worksheet range as a table.
func (cmd *command) fetch(options *Options) (*table.Table, error) {
	cmd.debug = options.Debug

	log.SetDebug(cmd.debug)

	if strings.TrimSpace(cmd.url) == "" {
		return nil, fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.area) == "" {
		return nil, fmt.Errorf("--range is a required option")
	}

	spreadsheet, err := spreadsheetID(cmd.url)
	if err != nil {
		return nil, err
	}

	if _, err := connector.ParseRange(cmd.area); err != nil {
		return nil, err
	}

	ragged := connector.Pad
	if cmd.strict {
		ragged = connector.Strict
	}

	log.Debugf("Spreadsheet - ID:%s  range:%s  credentials:%v", spreadsheet, cmd.area, cmd.descriptor())

	t, err := connector.Fetch(context.Background(),
		cmd.descriptor(),
		spreadsheet,
		strings.TrimSpace(cmd.area),
		connector.WithRaggedRows(ragged),
		connector.WithDebug(cmd.debug))

	if err != nil {
		return nil, err
	}

	log.Infof("Retrieved %v columns and %v rows from %v", len(t.Header), len(t.Records), cmd.area)

	return t, nil
}

func (cmd *command) descriptor() credentials.Descriptor {
	if strings.TrimSpace(cmd.credentials) != "" {
		return credentials.FromFile(cmd.credentials)
	}

	if key := strings.TrimSpace(os.Getenv(CREDENTIALS_ENV)); key != "" {
		return credentials.FromJSON([]byte(key))
	}

	return credentials.FromFile(DEFAULT_CREDENTIALS)
}

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL. A bare ID is returned as is.
func spreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)

	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}
