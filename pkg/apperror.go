package pkg

// AppError is the application-level error carried between handlers and the
// HTTP boundary. Code is a stable machine-readable identifier, Message is
// safe to show to clients, Err keeps the internal cause for logging.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON error body returned to clients: a human-readable
// message plus an optional internal detail string. Never a raw stack.
type HTTPError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ToHTTPError renders the client-facing body. The internal cause is exposed
// only through the details field.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Message: e.Message}
	if e.Err != nil {
		out.Details = e.Err.Error()
	}
	return out
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
