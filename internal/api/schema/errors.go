package schema

var emptyDetails = map[string]interface{}{}

var (
	ErrInternal = &Error{
		Code:    "generic.internal",
		Message: "An internal error occurred.",
		Details: emptyDetails,
	}
	ErrNotFound = &Error{
		Code:    "generic.notFound",
		Message: "Resource not found.",
		Details: emptyDetails,
	}
	ErrMethodNotAllowed = &Error{
		Code:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
		Details: emptyDetails,
	}
	ErrConflict = &Error{
		Code:    "generic.conflict",
		Message: "The request conflicts with the current resource state.",
		Details: emptyDetails,
	}
)

// Error describes the failure carried by a Response envelope
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Combine folds multiple error descriptors into a single one, keeping the individual
// descriptors accessible through the details of the combined one.
// Calling it with a single descriptor returns that descriptor unchanged.
func Combine(errs ...*Error) *Error {
	if len(errs) == 1 {
		return errs[0]
	}
	return &Error{
		Code:    "generic.multiple",
		Message: "Multiple errors occurred.",
		Details: map[string]interface{}{
			"errors": errs,
		},
	}
}
