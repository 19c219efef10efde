package chat

import "fmt"

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry in an outgoing completion request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func (m Message) String() string {
	return fmt.Sprintf("[%s]: %s", m.Role, m.Content)
}

// Turn is one exchange in a conversation, oldest-first in a history slice.
// Named fields rather than a bare pair so user and bot text cannot be
// swapped silently.
type Turn struct {
	UserText string
	BotText  string
}
