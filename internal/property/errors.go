package property

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrMigrationBusy    = errors.New("price migration already running for this product")
)
