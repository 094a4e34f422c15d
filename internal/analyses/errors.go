package analyses

import "errors"

var (
	ErrNotFound                = errors.New("report not found")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
