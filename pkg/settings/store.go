package settings

import (
	"encoding/json"
	"errors"

	"github.com/peterbourgon/diskv/v3"
)

const displayKey = "display"

// Store reads and writes persisted preferences as flat key-value records,
// opaque to everything but this package.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Load opens the settings store using the provided config, falling back to
// LoadConfig when cfg is nil.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath()), nil
}

// Open creates a store rooted at basePath.
func Open(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 64 * 1024,
		}),
		basePath: basePath,
	}
}

// Display loads the persisted display settings with defaults merged under
// any stored values: a key present on disk wins, an absent key keeps its
// default. A missing or empty record yields Defaults.
func (s *Store) Display() (Display, error) {
	out := Defaults()
	data, err := s.d.Read(displayKey)
	if err != nil {
		// No record yet is the normal first-run case.
		return out, nil
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Defaults(), err
	}
	out.Normalize()
	return out, nil
}

// SaveDisplay persists the record verbatim, replacing any prior value.
func (s *Store) SaveDisplay(d Display) error {
	if s == nil {
		return errors.New("settings: store not loaded")
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.d.Write(displayKey, data)
}
