// roxlit-icons regenerates every app icon from logo.png — single source
// of truth. Run it from the project root; it takes no arguments.
package main

import (
	"errors"
	"os"

	"github.com/Roxlit/installer/internal/config"
	"github.com/Roxlit/installer/internal/icons"
	"github.com/Roxlit/installer/internal/ui"
)

func main() {
	ui.PrintBanner()
	ui.Header("Generating Icons")

	if err := icons.Generate(config.DefaultLayout()); err != nil {
		if errors.Is(err, icons.ErrSourceNotFound) {
			ui.Error(err.Error())
		} else {
			ui.Error("icon generation failed: " + err.Error())
		}
		os.Exit(1)
	}

	ui.Success("All icons generated from " + config.SourceName)
}
