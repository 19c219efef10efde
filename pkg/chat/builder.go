package chat

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/loom/pkg/bots"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gpt-4"

// Builder assembles the outgoing message list for each exchange and hands it
// to the completer. It keeps no state between calls: the caller accumulates
// history and feeds it back on the next turn.
type Builder struct {
	completer Completer
	model     string
}

func NewBuilder(completer Completer, model string) *Builder {
	if model == "" {
		model = DefaultModel
	}
	return &Builder{completer: completer, model: model}
}

// BuildMessages produces the request sequence: the bot's entrypoint as the
// single system seed, each history turn replayed in order, then the new user
// message. History is replayed verbatim, with no reordering or truncation;
// windowing is the caller's policy if they want one.
//
// TODO(loom) replayed bot turns are tagged system, not assistant; confirm
// which role the completion API expects before changing it.
func BuildMessages(bot bots.Bot, message string, history []Turn) []Message {
	messages := make([]Message, 0, 2*len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: bot.Entrypoint})
	for _, turn := range history {
		messages = append(messages,
			Message{Role: RoleUser, Content: turn.UserText},
			Message{Role: RoleSystem, Content: turn.BotText},
		)
	}
	return append(messages, Message{Role: RoleUser, Content: message})
}

// Converse sends one exchange to the completer and returns the reply text.
// A single attempt, no retry; completer failures propagate as ErrCompletion.
func (b *Builder) Converse(ctx context.Context, bot bots.Bot, message string, history []Turn) (string, error) {
	messages := BuildMessages(bot, message, history)
	log.Debug().
		Str("bot", bot.Name).
		Int("history_turns", len(history)).
		Int("num_messages", len(messages)).
		Msg("conversing")
	return b.completer.Complete(ctx, b.model, messages)
}
