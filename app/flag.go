package app

import "github.com/urfave/cli/v2"

var (
	linkFlag = &cli.StringFlag{
		Name:    "link",
		Aliases: []string{"l"},
		Usage:   "Load the timetable from a share link, overriding saved settings",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	copyFlag = &cli.BoolFlag{
		Name:    "copy",
		Aliases: []string{"c"},
		Usage:   "Copy the share link to the clipboard",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of history entries to show",
		Value:   20,
	}
)
