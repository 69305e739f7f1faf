package errors

import "net/http"

var (
	ErrAttractionNotFound = New(
		"ATTRACTION_NOT_FOUND",
		"Attraction not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrUnknownCategory = New(
		"UNKNOWN_CATEGORY",
		"Unknown attraction category",
		http.StatusBadRequest,
	)

	ErrInitializationFailed = New(
		"INITIALIZATION_FAILED",
		"Failed to initialize data",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrLocationPermissionDenied = New(
		"LOCATION_PERMISSION_DENIED",
		"Location permissions not granted",
		http.StatusForbidden,
	)

	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Location services not available",
		http.StatusServiceUnavailable,
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
