// Package export assembles the environment snapshot and writes it to the
// fixed output path consumed by the scheduler plugin.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/bradfitz/latlong"

	"fppenv/internal/locale"
)

// Exit codes reported to the invoking scheduler.
const (
	ExitOK       = 0 // snapshot written, validation passed
	ExitDegraded = 1 // snapshot written, validation failed
	ExitWrite    = 2 // snapshot could not be written
)

// Settings is the host settings lookup the exporter depends on. Absent keys
// yield zero values rather than errors.
type Settings interface {
	Get(name string) string
	Float64(name string) float64
}

// Exporter assembles and writes one environment snapshot per Run.
type Exporter struct {
	settings   Settings
	locale     locale.Provider
	outputPath string
}

func New(settings Settings, provider locale.Provider, outputPath string) *Exporter {
	return &Exporter{
		settings:   settings,
		locale:     provider,
		outputPath: outputPath,
	}
}

// Run builds the snapshot, writes it and returns the process exit code. The
// only fatal condition is a failed write; every other problem is recorded
// inside the document and the run completes.
func (e *Exporter) Run(ctx context.Context) int {
	doc := NewDocument()

	NewPipeline(
		e.gatherSettings,
		e.gatherLocale,
		e.validate,
	).Run(ctx, doc)

	if err := e.write(doc); err != nil {
		log.Printf("ERROR: Unable to write %s: %v", e.outputPath, err)
		return ExitWrite
	}

	if !doc.OK {
		return ExitDegraded
	}
	return ExitOK
}

// gatherSettings copies the canonical coordinate and timezone settings into
// the snapshot. Empty or unparsable coordinates come back as 0 and are left
// for validation to flag.
func (e *Exporter) gatherSettings(_ context.Context, doc *Document) error {
	doc.Latitude = e.settings.Float64("Latitude")
	doc.Longitude = e.settings.Float64("Longitude")
	doc.Timezone = e.settings.Get("TimeZone")
	return nil
}

// gatherLocale attaches the provider's document verbatim. Provider failure is
// soft: the snapshot keeps an empty rawLocale and records the reason.
func (e *Exporter) gatherLocale(_ context.Context, doc *Document) error {
	raw, err := e.locale.Load()
	if err != nil {
		doc.RawLocale = map[string]any{}
		doc.LocaleError = err.Error()
		return fmt.Errorf("locale provider: %w", err)
	}
	doc.RawLocale = raw
	return nil
}

// validate runs the document checks and, when the timezone setting is missing
// but the coordinates are usable, derives a suggestion from them. The
// suggestion is an operator aid; validation still fails.
func (e *Exporter) validate(_ context.Context, doc *Document) error {
	doc.Validate()
	for _, msg := range doc.Errors {
		log.Printf("WARN: %s", msg)
	}

	if doc.Timezone == "" && doc.Latitude != 0 && doc.Longitude != 0 {
		doc.SuggestedTimezone = latlong.LookupZoneName(doc.Latitude, doc.Longitude)
	}
	return nil
}

// write marshals the finished document and replaces the output file in a
// single call, so a failed open never leaves a half-written snapshot behind.
func (e *Exporter) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(e.outputPath, append(data, '\n'), 0o644)
}
