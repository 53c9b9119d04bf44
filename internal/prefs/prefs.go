// Package prefs persists the single cosmetic preference of the dashboard:
// which logo variant the sidebar shows.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const prefsFile = "prefs.json"

type LogoVariant string

const (
	LogoClassic    LogoVariant = "classic"
	LogoSimple     LogoVariant = "simple"
	LogoMinimal    LogoVariant = "minimal"
	LogoFuturistic LogoVariant = "futuristic"
)

// DefaultLogo is used whenever no valid preference is stored.
const DefaultLogo = LogoClassic

var variants = []LogoVariant{LogoClassic, LogoSimple, LogoMinimal, LogoFuturistic}

func (v LogoVariant) Valid() bool {
	for _, x := range variants {
		if v == x {
			return true
		}
	}
	return false
}

// Next cycles through the variants in a fixed order.
func (v LogoVariant) Next() LogoVariant {
	for i, x := range variants {
		if v == x {
			return variants[(i+1)%len(variants)]
		}
	}
	return DefaultLogo
}

type Prefs struct {
	LogoVariant LogoVariant `json:"logo_variant"`
}

// Store reads and writes prefs.json in Dir.
type Store struct {
	Dir string
}

// DefaultStore places prefs under the user config directory.
func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: filepath.Join(dir, "paynex")}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, prefsFile)
}

// Load returns the stored prefs. Any read or decode failure, or an unknown
// variant, yields the default together with the error so callers can log it.
func (s *Store) Load() (Prefs, error) {
	def := Prefs{LogoVariant: DefaultLogo}
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, err
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return def, err
	}
	if !p.LogoVariant.Valid() {
		return def, nil
	}
	return p, nil
}

// Save writes prefs atomically via a temp file.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path())
}
