package errs

// Sentinels shared across usecase layers. Handlers classify with errors.Is.
var (
	// Promotion errors
	ErrPromotionNotFound = New("promotion not found")
	ErrRepositoryFailure = New("promotion repository failure")

	// Cart errors
	ErrCartNotFound = New("cart not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)
