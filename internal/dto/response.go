package dto

// Meta carries pagination metadata on list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data any, message string) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse wraps an error message, optionally with per-field errors.
func NewErrorResponse(message string, errors any) Response {
	return Response{Success: false, Message: message, Errors: errors}
}

// NewPaginatedResponse wraps a page of data with pagination metadata.
func NewPaginatedResponse(data any, message string, page, limit int, total int64) Response {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
