package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all flags for the application.
// --version is provided by urfave/cli via App.Version.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "config-file",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}
