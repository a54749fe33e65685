package openai

import "fmt"

// Kind classifies a chat-completion failure. The chat service maps each
// kind to a distinct user-visible message; nothing here reaches the user
// directly.
type Kind string

const (
	KindAuth       Kind = "authentication"
	KindQuota      Kind = "quota"
	KindTimeout    Kind = "timeout"
	KindService    Kind = "service"
	KindConfig     Kind = "configuration"
	KindUnexpected Kind = "unexpected"
)

// Error is a classified failure from the chat-completion boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("openai %s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("openai %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err, defaulting to unexpected.
func KindOf(err error) Kind {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Kind
	}
	return KindUnexpected
}
