package errors

import "net/http"

var (
	ErrUnknownDataset = New(
		"UNKNOWN_DATASET",
		"Unknown dataset",
		http.StatusNotFound,
	)

	ErrInvalidSeed = New(
		"INVALID_SEED",
		"Seed must be a non-negative integer",
		http.StatusBadRequest,
	)

	ErrUnknownColumn = New(
		"UNKNOWN_COLUMN",
		"Unknown column",
		http.StatusBadRequest,
	)

	ErrUnknownChart = New(
		"UNKNOWN_CHART",
		"Unknown chart",
		http.StatusNotFound,
	)

	ErrUnsupportedFormat = New(
		"UNSUPPORTED_FORMAT",
		"Unsupported export format",
		http.StatusBadRequest,
	)

	ErrExportNotReady = New(
		"EXPORT_NOT_READY",
		"Export is not ready or has expired",
		http.StatusNotFound,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Stream operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
