package jokeapi

import (
	"errors"
	"fmt"
	"strings"
)

// GenericMessage is shown when a failure carries no provider message.
const GenericMessage = "Failed to fetch joke"

// TransportError reports that the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// ProviderError reports an error payload from JokeAPI, or a body that could
// not be understood as a joke.
type ProviderError struct {
	Message string
	Code    int
	Causes  []string
	Err     error
}

func (e *ProviderError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "provider error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

// UserMessage collapses any fetch failure into the single string shown to
// the user. Only provider-reported messages survive; everything else becomes
// GenericMessage.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var perr *ProviderError
	if errors.As(err, &perr) && perr.Err == nil {
		if msg := strings.TrimSpace(perr.Message); msg != "" {
			return msg
		}
	}
	return GenericMessage
}
