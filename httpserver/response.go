package httpserver

type HandlerResponse[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `example:"1"  json:"page"`
	PageSize   int `example:"10" json:"pageSize"`
	TotalCount int `example:"47" json:"totalCount"`
	TotalPages int `example:"5"  json:"totalPages"`
}

type APIResponse[T any] struct {
	RequestID  string      `example:"3bf74527-8097-4217-8485-ffe05d16f82e" json:"requestId,omitempty"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// StatusResponse is the plain liveness payload served at the root path.
type StatusResponse struct {
	Status string `json:"status"`
}
