package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Authentication
const (
	BearerPrefix           = "Bearer "
	MinUsernameLength      = 3
	MinPasswordLength      = 5
	DefaultAccessTokenTTL  = 7 * 24 * time.Hour
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Generic message shown to clients when an operation fails unexpectedly.
const GenericErrorMessage = "Something went wrong"
