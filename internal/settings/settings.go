// Package settings reads the host application's settings store.
//
// FPP keeps its settings in a single key=value file under the media root
// (lines like `TimeZone = "America/New_York"`, # comments allowed), which is
// dotenv syntax, so the file is parsed with godotenv and held in a typed
// vars.Map for lookup by name.
package settings

import (
	"log"
	"path/filepath"

	"github.com/happy-sdk/happy/pkg/vars"
	"github.com/joho/godotenv"
)

// Store holds the parsed host settings. Lookups on missing keys return zero
// values; callers decide what an absent setting means.
type Store struct {
	m *vars.Map
}

// Load reads the settings file under mediaRoot. A missing or unreadable file
// is not fatal: the returned store is empty and every lookup yields a zero
// value, which downstream validation will flag.
func Load(mediaRoot string) *Store {
	return LoadFile(filepath.Join(mediaRoot, "settings"))
}

// LoadFile is Load with an explicit file path.
func LoadFile(path string) *Store {
	s := &Store{m: vars.NewMap()}

	pairs, err := godotenv.Read(path)
	if err != nil {
		log.Printf("WARN: settings file %s not loaded: %v", path, err)
		return s
	}

	for k, v := range pairs {
		if err := s.m.Store(k, v); err != nil {
			log.Printf("WARN: skipping setting %q: %v", k, err)
		}
	}
	return s
}

// Get returns the raw string value of a setting, "" when absent.
func (s *Store) Get(name string) string {
	return s.m.Get(name).String()
}

// Float64 returns the numeric value of a setting. Absent, empty and
// unparsable values all yield 0.
func (s *Store) Float64(name string) float64 {
	return s.m.Get(name).Float64()
}
