package locale

import (
	"fmt"

	golocale "github.com/jeandeaual/go-locale"
)

// SystemProvider resolves the locale document from the operating system. It
// carries only the locale identifier, no coordinates or holidays, and is the
// fallback when no locale file is present.
type SystemProvider struct{}

func (SystemProvider) Load() (Document, error) {
	loc, err := golocale.GetLocale()
	if err != nil {
		return nil, fmt.Errorf("detect system locale: %w", err)
	}
	return Document{"locale": loc}, nil
}
