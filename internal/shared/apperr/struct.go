package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // user-facing message, short and safe
	Fields    map[string]string // field-level validation errors (optional)
	Err       error             // internal error (for logs)
}
