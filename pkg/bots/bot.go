package bots

import (
	"fmt"

	"github.com/google/uuid"
)

// Bot is a named persona. Entrypoint is the system prompt that seeds every
// conversation with it.
type Bot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Entrypoint  string `json:"entrypoint"`
}

// NewBot assigns a fresh identifier and stores the fields verbatim. No
// trimming or normalization happens here.
func NewBot(name, description, entrypoint string) Bot {
	return Bot{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Entrypoint:  entrypoint,
	}
}

// Equal compares identity only. Two bots with the same name and prompt but
// different IDs are different bots.
func (b Bot) Equal(other Bot) bool {
	return b.ID == other.ID
}

func (b Bot) String() string {
	return fmt.Sprintf("%s (%s)", b.Name, b.Description)
}
