package models

// Response is the uniform JSON envelope returned by every handler.
// The HTTP status code of the response is duplicated in Status so that
// clients reading only the body can still branch on the outcome.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ResponseWithPagination is the envelope returned by the list operation.
// It carries the same fields as [Response] plus pagination metadata.
type ResponseWithPagination struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Meta    Meta   `json:"meta"`
	Data    any    `json:"data"`
}

// Meta describes the position of a list response within the whole table.
type Meta struct {
	// TotalData is the unfiltered row count of the users table,
	// not the size of the returned page.
	TotalData int64 `json:"total_data"`

	// PerPage is the requested page size.
	PerPage int64 `json:"per_page"`

	// Page is the requested 1-based page number.
	Page int64 `json:"page"`
}

// PaginationParams are the query parameters of the list operation.
// Values are passed to the store as-is; degenerate values (page < 1,
// limit <= 0) are not rejected and produce degenerate SQL.
type PaginationParams struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}
