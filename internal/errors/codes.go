package errors

// Error code constants returned to the frontend.
// The frontend maps each code to a fixed user-facing message, so the
// vocabulary is closed: new failure modes must reuse one of these.

const (
	// No authenticated caller (missing/invalid/expired/revoked token)
	Unauthorized = "UNAUTHORIZED"

	// Request body or parameters failed schema validation
	InvalidInput = "INVALID_INPUT"

	// Target entity absent on update/delete/fetch
	NotFound = "NOT_FOUND"

	// Caller is neither the owner nor an admin
	Forbidden = "FORBIDDEN"

	// Uniqueness violated
	UserExists  = "USER_EXISTS"  // User.email already taken
	BrandExists = "BRAND_EXISTS" // Brand.name already taken

	// Any other persistence/runtime failure; details are logged, never leaked
	ServerError = "SERVER_ERROR"
)
