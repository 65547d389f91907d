package schema

// Response represents the unified envelope wrapping every single-entity API result
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope carrying the given payload.
// An optional human-readable message may be attached; only the first one is used.
func OK[T any](data T, message ...string) *Response[T] {
	response := &Response[T]{
		Success: true,
		Data:    data,
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	return response
}

// Fail builds a failure envelope carrying the given error descriptor.
// The data field is always left unset.
func Fail(err *Error, message ...string) *Response[any] {
	response := &Response[any]{
		Success: false,
		Error:   err,
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	return response
}

// DeleteResult is the payload every delete endpoint resolves to.
// Delete endpoints acknowledge with a single flag instead of echoing the deleted entity.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// DeleteResponse represents the unified envelope acknowledging a delete operation
type DeleteResponse = Response[DeleteResult]

// Deleted builds the success envelope every delete endpoint responds with
func Deleted() *DeleteResponse {
	return OK(DeleteResult{Deleted: true})
}
