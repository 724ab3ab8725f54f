package service

// Typed service errors. Handlers dispatch on these with errors.As and map
// them to 404 / 409 / 400; anything else becomes a generic 500.

// NotFoundError covers both missing primary rows and missing foreign-key
// targets discovered by pre-reads.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError covers uniqueness violations and restricted deletes.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// BadRequestError covers malformed input detected past schema validation,
// such as an impossible calendar date or an update with no fields.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

var errNoFields = &BadRequestError{Msg: "No fields to update"}
