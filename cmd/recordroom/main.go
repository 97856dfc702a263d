package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/config"
	recordhttp "github.com/jennahya/recordroom/internal/http"
	"github.com/jennahya/recordroom/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		baseFlag    = flag.String("records", "", "Path or URL of the base catalog (overrides config)")
		overlayFlag = flag.String("details", "", "Path or URL of the detail overlay (overrides config)")
		tabFlag     = flag.String("tab", "all", "Initial filter tab (all, favorites, or a category)")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *baseFlag != "" {
		settings.BaseCatalogPath = *baseFlag
	}
	if *overlayFlag != "" {
		settings.OverlayCatalogPath = *overlayFlag
	}

	client := recordhttp.NewClient(settings.UserAgent)
	loader := catalog.NewLoader(client, settings.BaseCatalogPath, settings.OverlayCatalogPath)

	if err := tui.Run(loader, *tabFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
