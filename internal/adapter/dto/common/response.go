package common

// PaginationRequest holds page query parameters
type PaginationRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// Normalize fills in defaults
func (p *PaginationRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}

// Offset returns the row offset of the page
func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Data       interface{}         `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// MessageResponse is a bare message body
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	AIProvider  string `json:"ai_provider"`
	AIReady     bool   `json:"ai_ready"`
}
