package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/loom/pkg/bots"
)

type stubCompleter struct {
	reply string
	err   error

	model    string
	messages []Message
}

func (s *stubCompleter) Complete(_ context.Context, model string, messages []Message) (string, error) {
	s.model = model
	s.messages = messages
	return s.reply, s.err
}

var helperBot = bots.Bot{
	ID:          "a1",
	Name:        "Helper",
	Description: "d",
	Entrypoint:  "You are Helper.",
}

func TestConverseWithoutHistory(t *testing.T) {
	stub := &stubCompleter{reply: "Hello!"}
	builder := NewBuilder(stub, "")

	reply, err := builder.Converse(context.Background(), helperBot, "Hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply)

	require.Equal(t, []Message{
		{Role: RoleSystem, Content: "You are Helper."},
		{Role: RoleUser, Content: "Hi"},
	}, stub.messages)
}

func TestConverseReplaysHistoryInOrder(t *testing.T) {
	stub := &stubCompleter{reply: "Sure."}
	builder := NewBuilder(stub, "")

	history := []Turn{{UserText: "Hi", BotText: "Hello!"}}
	_, err := builder.Converse(context.Background(), helperBot, "Next question", history)
	require.NoError(t, err)

	require.Equal(t, []Message{
		{Role: RoleSystem, Content: "You are Helper."},
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleSystem, Content: "Hello!"},
		{Role: RoleUser, Content: "Next question"},
	}, stub.messages)
}

func TestConverseLongHistoryIsNeitherReorderedNorTruncated(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	builder := NewBuilder(stub, "")

	history := []Turn{
		{UserText: "one", BotText: "1"},
		{UserText: "two", BotText: "2"},
		{UserText: "three", BotText: "3"},
	}
	_, err := builder.Converse(context.Background(), helperBot, "four", history)
	require.NoError(t, err)

	require.Len(t, stub.messages, 8)
	assert.Equal(t, Message{Role: RoleUser, Content: "one"}, stub.messages[1])
	assert.Equal(t, Message{Role: RoleSystem, Content: "1"}, stub.messages[2])
	assert.Equal(t, Message{Role: RoleUser, Content: "three"}, stub.messages[5])
	assert.Equal(t, Message{Role: RoleSystem, Content: "3"}, stub.messages[6])
	assert.Equal(t, Message{Role: RoleUser, Content: "four"}, stub.messages[7])
}

func TestConverseDefaultsModel(t *testing.T) {
	stub := &stubCompleter{}
	builder := NewBuilder(stub, "")

	_, err := builder.Converse(context.Background(), helperBot, "Hi", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, stub.model)
}

func TestConverseUsesConfiguredModel(t *testing.T) {
	stub := &stubCompleter{}
	builder := NewBuilder(stub, "gpt-4-turbo")

	_, err := builder.Converse(context.Background(), helperBot, "Hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4-turbo", stub.model)
}

func TestConversePropagatesCompleterFailure(t *testing.T) {
	stub := &stubCompleter{err: ErrCompletion}
	builder := NewBuilder(stub, "")

	_, err := builder.Converse(context.Background(), helperBot, "Hi", nil)
	require.ErrorIs(t, err, ErrCompletion)
}
