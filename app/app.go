// Package app defines the belfry command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/belfry-dev/belfry/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the belfry app instance.
func Get() *cli.App {
	belfryApp := &cli.App{
		Name: "belfry",
		Usage: `
		Belfry is a school bell timetable for the command-line. It displays a
		fullscreen clock with the next upcoming bell and plays a chime when a
		configured time is reached. Timetables can be shared as links or JSON
		files.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the timetable sorted by time of day",
				Action: listAction,
			},
			{
				Name:      "add",
				Usage:     "Add one or more bells (24-hour HH:MM)",
				ArgsUsage: "TIME...",
				Action:    addAction,
			},
			{
				Name:      "remove",
				Usage:     "Remove a bell by time or list position",
				ArgsUsage: "TIME|POSITION",
				Action:    removeAction,
			},
			{
				Name:      "label",
				Usage:     "Rename the timetable",
				ArgsUsage: "NAME",
				Action:    labelAction,
			},
			{
				Name:      "import",
				Usage:     "Replace the timetable with a JSON file",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{yesFlag},
				Action:    importAction,
			},
			{
				Name:      "export",
				Usage:     "Write the timetable to a JSON file",
				ArgsUsage: "[FILE]",
				Action:    exportAction,
			},
			{
				Name:   "share",
				Usage:  "Print the share link for the timetable",
				Flags:  []cli.Flag{copyFlag},
				Action: shareAction,
			},
			{
				Name:   "reset",
				Usage:  "Restore the built-in timetable",
				Flags:  []cli.Flag{yesFlag},
				Action: resetAction,
			},
			{
				Name:   "history",
				Usage:  "List recently fired chimes",
				Flags:  []cli.Flag{limitFlag},
				Action: historyAction,
			},
			{
				Name:   "ring",
				Usage:  "Play the chime once",
				Action: ringAction,
			},
		},
		Flags: []cli.Flag{
			linkFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return belfryApp
}
