// Package entity defines the data structures shared by the web layer.
package entity

// Msg is the fixed response envelope. Success responses carry data,
// failures carry the error messages.
type Msg struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Pagination describes the slice of a list response. Total counts every
// row matching the filter, not just the returned page.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}
