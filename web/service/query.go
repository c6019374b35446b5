// Package service implements the persistence gateway: per-entity CRUD
// operations that validate before writing and classify failures.
package service

import (
	"strconv"
	"strings"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ListPlan is a bounded, deterministic read plan for a list request.
type ListPlan struct {
	CurrentPage int
	PageSize    int
}

func (p ListPlan) Offset() int {
	return (p.CurrentPage - 1) * p.PageSize
}

// ParsePage normalizes raw page parameters: absolute value, defaulting to
// page 1 and size 10 when missing, zero, negative or non-numeric. No
// upper bound is enforced on the page size.
func ParsePage(currentPage, pageSize string) ListPlan {
	return ListPlan{
		CurrentPage: absIntOr(currentPage, defaultPage),
		PageSize:    absIntOr(pageSize, defaultPageSize),
	}
}

func absIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return fallback
	}
	return n
}
