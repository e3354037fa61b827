package dto

// APIResponse is the minimal response envelope: every endpoint returns at
// least {success, message}.
type APIResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Operation completed successfully"`
}

// NewMessageResponse creates a success envelope with a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a failure envelope with a message.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// Pagination carries list metadata. Current is the 1-based page shown to
// the client while the page query parameter itself is 0-based.
type Pagination struct {
	Total   int64 `json:"total" example:"25"`
	Pages   int   `json:"pages" example:"3"`
	Current int   `json:"current" example:"1"`
	Limit   int   `json:"limit" example:"10"`
}

// ListResponse is the envelope for paginated collections.
type ListResponse struct {
	Success    bool        `json:"success" example:"true"`
	Pagination Pagination  `json:"pagination"`
	Data       interface{} `json:"data"`
}

// NewListResponse creates a paginated list envelope.
func NewListResponse(pagination Pagination, data interface{}) ListResponse {
	return ListResponse{
		Success:    true,
		Pagination: pagination,
		Data:       data,
	}
}
