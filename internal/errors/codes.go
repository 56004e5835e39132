package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to its own display messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // malformed token
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // token revoked
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // email already registered

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // malformed input
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // malformed ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // wrong format
	ValidationRequired      = "VALIDATION_REQUIRED"       // missing required field

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // no such resource
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // duplicate resource
	ResourceConflict      = "RESOURCE_CONFLICT"       // conflicting state

	// ==================== Catalog (PIZZA_) ====================
	PizzaNotFound = "PIZZA_NOT_FOUND" // no such pizza

	// ==================== Cart (CART_) ====================
	CartItemNotFound = "CART_ITEM_NOT_FOUND" // item not in cart
	CartEmpty        = "CART_EMPTY"          // cart has no items

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutInvalidNationalID = "CHECKOUT_INVALID_NATIONAL_ID" // national ID not 11 digits
	CheckoutFailed            = "CHECKOUT_FAILED"              // order could not be placed

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unexpected server error
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // database failure
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"   // configuration failure
)
