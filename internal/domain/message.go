package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. History is replayed to the model
// in append order on every call, so order is significant.
type Message struct {
	Role    Role
	Content string
}

func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// TrimWindow keeps the newest max messages in their original order. A max
// of zero or less leaves the history untouched.
func TrimWindow(messages []Message, max int) []Message {
	if max <= 0 || len(messages) <= max {
		return messages
	}

	return messages[len(messages)-max:]
}
