package bots

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Loom owns the on-disk bot collection. It keeps no in-memory cache: every
// operation re-reads and re-validates the file, so results always reflect the
// latest on-disk state. Whole-file read-modify-write with no locking means
// concurrent external writers can lose updates; callers accept that hazard.
type Loom struct {
	path string
}

// NewLoom returns a registry over the bots file at path. The file does not
// have to exist yet.
func NewLoom(path string) *Loom {
	return &Loom{path: path}
}

// Path returns the configured bots file path.
func (l *Loom) Path() string {
	return l.path
}

// FileExists reports whether the bots file is present on disk.
func (l *Loom) FileExists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// LoadAll reads, validates, and materializes the full collection in file
// order. Identifiers come from the file, never regenerated. A file that fails
// validation is not partially loaded: the whole call fails.
func (l *Loom) LoadAll() ([]Bot, error) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(ErrStorage, "reading %s: %v", l.path, err)
	}

	var raw interface{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %v", l.path, err)
	}

	if err := validateCollection(l.path, content); err != nil {
		return nil, err
	}

	var collection []Bot
	if err := json.Unmarshal(content, &collection); err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %v", l.path, err)
	}

	log.Debug().Str("path", l.path).Int("count", len(collection)).Msg("loaded bots")
	return collection, nil
}

// SaveAll serializes the full collection with human-readable indentation and
// overwrites the file. This is the only path that mutates persisted state; it
// always writes the complete collection, never a delta.
func (l *Loom) SaveAll(collection []Bot) error {
	if collection == nil {
		collection = []Bot{}
	}
	content, err := json.MarshalIndent(collection, "", "    ")
	if err != nil {
		return errors.Wrapf(ErrStorage, "encoding bots: %v", err)
	}
	if err := os.WriteFile(l.path, content, 0o644); err != nil {
		return errors.Wrapf(ErrStorage, "writing %s: %v", l.path, err)
	}
	log.Debug().Str("path", l.path).Int("count", len(collection)).Msg("saved bots")
	return nil
}

// FindByID returns the bot with the given identifier, or ErrNotFound.
func (l *Loom) FindByID(id string) (Bot, error) {
	return l.find(func(b Bot) bool { return b.ID == id })
}

// FindByName returns the first bot with the given name in file order, or
// ErrNotFound. Names are not unique; duplicates after the first are ignored.
func (l *Loom) FindByName(name string) (Bot, error) {
	return l.find(func(b Bot) bool { return b.Name == name })
}

func (l *Loom) find(match func(Bot) bool) (Bot, error) {
	collection, err := l.LoadAll()
	if err != nil {
		return Bot{}, err
	}
	for _, b := range collection {
		if match(b) {
			return b, nil
		}
	}
	return Bot{}, ErrNotFound
}

// AddBot appends bot to the collection and persists it. A missing file starts
// an empty collection; an invalid existing file aborts before any write.
func (l *Loom) AddBot(bot Bot) error {
	var collection []Bot
	if l.FileExists() {
		var err error
		collection, err = l.LoadAll()
		if err != nil {
			return err
		}
	}
	return l.SaveAll(append(collection, bot))
}

// RemoveBot removes the first element identity-equal to bot and persists the
// rest. Returns ErrNotFound if no such element exists; the file is left
// untouched in that case.
func (l *Loom) RemoveBot(bot Bot) error {
	collection, err := l.LoadAll()
	if err != nil {
		return err
	}
	for i, b := range collection {
		if b.Equal(bot) {
			return l.SaveAll(append(collection[:i:i], collection[i+1:]...))
		}
	}
	return errors.Wrapf(ErrNotFound, "bot %s (%s)", bot.Name, bot.ID)
}
