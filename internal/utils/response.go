package utils

// ErrorResponse is the uniform failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse acknowledges a mutation with no created id.
type OKResponse struct {
	Success bool `json:"success"`
}

// CreatedResponse acknowledges a mutation that created a row.
type CreatedResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

func NewOKResponse() OKResponse {
	return OKResponse{Success: true}
}

func NewCreatedResponse(id uint) CreatedResponse {
	return CreatedResponse{Success: true, ID: id}
}
