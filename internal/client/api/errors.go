package api

// GenericMessage is shown when the server supplies no error text.
const GenericMessage = "request failed"

// Error is the single failure kind at the client/API boundary. The transport
// does not distinguish 4xx from 5xx or auth failures from validation
// failures; callers get one "request failed" error carrying the
// server-supplied message when there is one.
type Error struct {
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int
	// Message is the server-supplied error text or a generic fallback.
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// errorOf wraps a message into the uniform error kind, applying the fallback.
func errorOf(status int, message string) *Error {
	if message == "" {
		message = GenericMessage
	}
	return &Error{Status: status, Message: message}
}
