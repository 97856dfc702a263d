package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jennahya/recordroom/internal/config"
	"github.com/jennahya/recordroom/internal/discogs"
	"github.com/jennahya/recordroom/internal/enrich"
	recordhttp "github.com/jennahya/recordroom/internal/http"
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		tokenFlag   = flag.String("token", "", "Discogs personal access token (overrides config)")
		baseFlag    = flag.String("records", "", "Path of the base catalog (overrides config)")
		overlayFlag = flag.String("details", "", "Path of the detail overlay (overrides config)")
		thumbsFlag  = flag.Bool("thumbs", false, "Also download and resize cover thumbnails")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *tokenFlag != "" {
		settings.DiscogsToken = *tokenFlag
	}
	if *baseFlag != "" {
		settings.BaseCatalogPath = *baseFlag
	}
	if *overlayFlag != "" {
		settings.OverlayCatalogPath = *overlayFlag
	}
	if *thumbsFlag {
		settings.SaveCoverThumbnails = true
	}

	if settings.DiscogsToken == "" {
		fmt.Fprintln(os.Stderr, "A Discogs token is required. Pass -token or set it in the config file.")
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := recordhttp.NewClient(settings.UserAgent)
	fetcher := discogs.NewClient(client, settings.DiscogsToken)

	job := enrich.NewJob(settings, fetcher, client, func(event enrich.ProgressEvent) {
		if event.Level == enrich.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case enrich.LevelError:
			prefix = "❌ "
		case enrich.LevelWarning:
			prefix = "⚠️  "
		case enrich.LevelSuccess:
			prefix = "✅ "
		case enrich.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎵 Record Room Enrichment")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	result, err := job.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nEnrichment cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during enrichment: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Done! Enriched %d record(s), skipped %d already enriched\n", result.Added, result.Skipped)
	if result.Unmatched > 0 {
		fmt.Printf("   %d record(s) had no Discogs match\n", result.Unmatched)
	}
	if result.Failed > 0 {
		fmt.Printf("   %d record(s) failed\n", result.Failed)
	}
	if result.Aborted {
		fmt.Println("   Stopped early (rate limited or cancelled); run again to continue.")
		os.Exit(1)
	}
}
