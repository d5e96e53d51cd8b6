package response

// MessageResponse is the plain success envelope most endpoints return.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
