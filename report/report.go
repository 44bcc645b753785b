// Package report prints user-facing status messages and errors.
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Status(msg string) {
	pterm.Info.Println(msg)
}

func Success(msg string) {
	pterm.Success.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
