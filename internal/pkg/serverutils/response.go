package serverutils

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is returned by operations that have nothing else to return.
type MessageBody struct {
	Message string `json:"message"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

func MessageResponse(message string) MessageBody {
	return MessageBody{Message: message}
}
