package response

// Envelope wraps every successful payload. Errors use pkg.HTTPError.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}
