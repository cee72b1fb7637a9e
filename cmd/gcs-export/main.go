package main

import (
	"context"
	"log"
	"os"

	"fppenv/internal/export"
	"fppenv/internal/locale"
	"fppenv/internal/settings"
	"fppenv/pkg/graceful"
)

// Paths are baked in; the program takes no flags and no environment
// configuration. An external scheduler simply re-invokes the binary.
const (
	mediaRoot  = "/home/fpp/media"
	outputPath = mediaRoot + "/plugins/GoogleCalendarScheduler/runtime/fpp-env.json"
	localePath = mediaRoot + "/config/locale.json"
)

func main() {
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	store := settings.Load(mediaRoot)

	// Prefer the locale file; without one the system locale still gives the
	// snapshot a locale identifier to pass through.
	var provider locale.Provider = locale.NewFileProvider(localePath)
	if _, err := os.Stat(localePath); err != nil {
		log.Printf("WARN: locale file %s not found, falling back to system locale", localePath)
		provider = locale.SystemProvider{}
	}

	exporter := export.New(store, provider, outputPath)
	os.Exit(exporter.Run(ctx))
}
