package serializer

const (
	// StatusSuccess is the envelope status of a succeeded request.
	StatusSuccess = "success"
	// StatusError is the envelope status of a failed request.
	StatusError = "error"
)

// An Envelope is the general API response format.
// It always contains a status and a message, plus optional extra fields.
type Envelope map[string]any

// Success returns a success envelope with the given message.
func Success(message string) Envelope {
	return Envelope{
		"status":  StatusSuccess,
		"message": message,
	}
}

// Failure returns an error envelope with the given message.
func Failure(message string) Envelope {
	return Envelope{
		"status":  StatusError,
		"message": message,
	}
}

// With adds an extra field to the envelope.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}
