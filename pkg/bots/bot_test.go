package bots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotAssignsFreshIdentifier(t *testing.T) {
	a := NewBot("Helper", "a helpful bot", "You are Helper.")
	b := NewBot("Helper", "a helpful bot", "You are Helper.")

	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Equal(b))
}

func TestNewBotStoresFieldsVerbatim(t *testing.T) {
	bot := NewBot("  Helper  ", "", "You are Helper.\n")

	assert.Equal(t, "  Helper  ", bot.Name)
	assert.Equal(t, "", bot.Description)
	assert.Equal(t, "You are Helper.\n", bot.Entrypoint)
}

func TestEqualComparesIdentityOnly(t *testing.T) {
	a := Bot{ID: "a1", Name: "Helper", Description: "d", Entrypoint: "e"}
	b := Bot{ID: "a1", Name: "Other", Description: "x", Entrypoint: "y"}
	c := Bot{ID: "c3", Name: "Helper", Description: "d", Entrypoint: "e"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBotString(t *testing.T) {
	bot := Bot{ID: "a1", Name: "Helper", Description: "a helpful bot"}
	assert.Equal(t, "Helper (a helpful bot)", bot.String())
}
