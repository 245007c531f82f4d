package repository

import "errors"

// ErrCollectionNotFound is returned when the addressed collection does not exist.
var ErrCollectionNotFound = errors.New("collection not found")

// Record is one document to insert.
type Record struct {
	ID       string
	Document string
	Vector   []float32
	Metadata map[string]string
}

// Match is one query result.
type Match struct {
	ID       string
	Document string
	Metadata map[string]string
	Score    float64
}
