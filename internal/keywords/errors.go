package keywords

import "errors"

var (
	ErrNotFound     = errors.New("keyword not found")
	ErrEmptyKeyword = errors.New("keyword phrase is empty")
)
