package chat

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	go_openai "github.com/sashabaranov/go-openai"
)

// ErrCompletion covers every failure of the remote completion call: auth,
// network, rate limits, and responses missing the expected choice.
var ErrCompletion = errors.New("completion request failed")

// Completer is the remote text-generation boundary. Implementations make a
// single attempt per call; retry policy belongs to callers.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// chatCompletionClient is the slice of the go-openai client the completer
// needs.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, request go_openai.ChatCompletionRequest) (go_openai.ChatCompletionResponse, error)
}

// OpenAICompleter calls the OpenAI chat completion API and reads back the
// first choice.
type OpenAICompleter struct {
	client chatCompletionClient
}

var _ Completer = (*OpenAICompleter)(nil)

// NewOpenAICompleter builds a completer over a default-configured client for
// the given API key.
func NewOpenAICompleter(apiKey string) *OpenAICompleter {
	return &OpenAICompleter{client: go_openai.NewClient(apiKey)}
}

func (c *OpenAICompleter) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	msgs := make([]go_openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, go_openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	log.Debug().Str("model", model).Int("num_messages", len(msgs)).Msg("sending completion request")
	resp, err := c.client.CreateChatCompletion(ctx, go_openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
	})
	if err != nil {
		return "", errors.Wrap(ErrCompletion, err.Error())
	}
	if len(resp.Choices) == 0 {
		return "", errors.Wrap(ErrCompletion, "response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
