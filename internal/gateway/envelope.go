package gateway

// Envelope is the uniform result wrapper for every gateway operation.
// Failures are encoded here, never as panics or Go errors: a caller
// always gets a value back.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data with an informational message.
func OKMessage(data any, msg string) Envelope {
	return Envelope{Success: true, Data: data, Message: msg}
}

// Fail builds a failure envelope with a descriptive error.
func Fail(err string) Envelope {
	return Envelope{Success: false, Error: err}
}
