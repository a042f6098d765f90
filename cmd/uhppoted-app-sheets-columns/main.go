package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-app-sheets-columns/commands"
	"github.com/uhppoted/uhppoted-app-sheets-columns/log"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.GetCmd,
	&commands.ColumnsCmd,
	&commands.DescribeCmd,
}

var options = commands.Options{
	Debug: false,
}

var help = uhppoted.NewHelp("uhppoted-app-sheets-columns", cli, nil)

func main() {
	env := ".env"

	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&env, "env", env, "Optional .env file with environment variables e.g. UHPPOTED_SHEETS_CREDENTIALS")
	flag.Parse()

	if err := godotenv.Load(env); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not load %v (%v)", env, err)
	}

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
