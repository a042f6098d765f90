package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/uhppoted/uhppoted-app-sheets-columns/table"
)

var DescribeCmd = Describe{
	command: command{
		credentials: "",
		url:         "",
		area:        "",
		debug:       false,
	},

	out: os.Stdout,
}

type Describe struct {
	command
	out io.Writer
}

func (cmd *Describe) Name() string {
	return "describe"
}

func (cmd *Describe) Description() string {
	return "Prints summary statistics for the numeric columns in a Google Sheets worksheet range"
}

func (cmd *Describe) Usage() string {
	return "--credentials <file> --url <url> --range <range>"
}

func (cmd *Describe) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] describe [options] --url <URL> --range <range>\n", APP)
	fmt.Println()
	fmt.Println("  Prints the count, mean, standard deviation, min, quartiles and max of each numeric column")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-sheets-columns describe --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                         --range "Class Data!A1:E"`)
	fmt.Println()
}

func (cmd *Describe) FlagSet() *flag.FlagSet {
	return cmd.flagset("describe")
}

func (cmd *Describe) Execute(args ...any) error {
	options := args[0].(*Options)

	t, err := cmd.fetch(options)
	if err != nil {
		return err
	}

	summaries, err := table.Describe(t)
	if err != nil {
		return err
	}

	return describe(cmd.out, summaries)
}

func describe(out io.Writer, summaries []table.Summary) error {
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No numeric columns")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, s := range summaries {
		fmt.Fprintf(w, "%v\t%v\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}

	return w.Flush()
}
