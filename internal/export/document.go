package export

// SchemaVersion marks the snapshot layout for the consuming plugin.
const SchemaVersion = 1

// Source identifies the producer of the snapshot.
const Source = "gcs-export"

// Document is the environment snapshot written for the downstream plugin.
// It is rebuilt from scratch on every run; nothing is merged from a prior
// output file.
type Document struct {
	SchemaVersion     int            `json:"schemaVersion"`
	Source            string         `json:"source"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	Timezone          string         `json:"timezone"`
	SuggestedTimezone string         `json:"suggestedTimezone,omitempty"`
	RawLocale         map[string]any `json:"rawLocale"`
	OK                bool           `json:"ok"`
	Errors            []string       `json:"errors,omitempty"`
	LocaleError       string         `json:"localeError,omitempty"`
}

// NewDocument returns a fresh snapshot. RawLocale starts as an empty object
// so the field is present in the output even when the provider never
// delivers.
func NewDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Source:        Source,
		RawLocale:     map[string]any{},
	}
}

// Validate checks that the snapshot carries usable coordinates and a
// timezone, accumulating one diagnostic per failed check. A zero coordinate
// counts as absent. Locale-provider trouble is reported in LocaleError and
// does not affect the result.
func (d *Document) Validate() {
	d.OK = true

	if d.Latitude == 0 || d.Longitude == 0 {
		d.OK = false
		d.Errors = append(d.Errors, "Latitude/Longitude not present (or zero) in FPP settings.")
	}
	if d.Timezone == "" {
		d.OK = false
		d.Errors = append(d.Errors, "Timezone not present in FPP settings.")
	}
}
