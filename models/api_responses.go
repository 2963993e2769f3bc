package models

// ApiResponse is the envelope for every JSON response. Success bodies carry
// Ok=true plus Data, failures carry Ok=false plus Message.
type ApiResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(data any) ApiResponse {
	return ApiResponse{Ok: true, Data: data}
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{Ok: true, Message: message}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{Ok: false, Message: message}
}
