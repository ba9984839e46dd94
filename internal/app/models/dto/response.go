package dto

import "github.com/crewboard/crewboard/internal/app/models"

// PaginationInfo describes one page of a list result. Total counts every
// row matching the predicate, not just the returned page.
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListAlunosResponse is the GET /alunos envelope.
type ListAlunosResponse struct {
	Data       []models.Aluno `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// MutationResponse is the envelope for create, update and delete.
type MutationResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *models.Aluno `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed request. Errors carries
// the per-field breakdown for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewErrorResponse builds a plain error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
