// Package entity contains the core business objects of the project as the
// clinic backend exposes them over its REST contract.
package entity

// Page is the pagination envelope every list endpoint returns.
// Number is the zero-based index of the current page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
