package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/config"
	recordhttp "github.com/jennahya/recordroom/internal/http"
	"github.com/jennahya/recordroom/internal/web"
)

func main() {
	var (
		addrFlag    = flag.String("addr", ":8080", "Listen address")
		configFlag  = flag.String("config", "", "Path to config file")
		baseFlag    = flag.String("records", "", "Path or URL of the base catalog (overrides config)")
		overlayFlag = flag.String("details", "", "Path or URL of the detail overlay (overrides config)")
		staticFlag  = flag.String("static", "", "Directory of static site assets to serve")
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

	store, err := loader.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	server := web.NewServer(store, *staticFlag)

	fmt.Printf("🎵 Record Room serving %d record(s) on %s\n", store.Len(), *addrFlag)
	if err := http.ListenAndServe(*addrFlag, server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
