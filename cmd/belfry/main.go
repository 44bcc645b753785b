package main

import (
	"os"

	"github.com/belfry-dev/belfry/app"
	"github.com/belfry-dev/belfry/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
