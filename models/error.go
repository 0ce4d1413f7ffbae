package models

// ErrorMessageResponse is the JSON body every handler error produces
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError pairs the operator-facing message with the underlying error
type MessageError struct {
	Message string
	Error   string
}
