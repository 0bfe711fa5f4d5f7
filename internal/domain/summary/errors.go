package summary

import "errors"

var (
	ErrSummaryNotFound = errors.New("daily team summary not found")
)
