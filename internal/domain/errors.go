package domain

import "errors"

// Domain errors.
var (
	ErrInvalidCode         = errors.New("invalid error code")
	ErrFacilityOutOfRange  = errors.New("facility code is not a valid 12-bit value")
	ErrCodeOutOfRange      = errors.New("code is not in the allowed range 0-999")
	ErrUnknownSeverity     = errors.New("unknown severity")
	ErrDuplicateCode       = errors.New("duplicate error code")
	ErrEntryNotFound       = errors.New("error code not found in catalog")
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrUnsupportedLanguage = errors.New("unsupported language tag")
)

// CodedError is an error that carries a catalog error code.
type CodedError struct {
	Code ErrorCode
	Err  error
}

// NewCodedError returns an error carrying code, optionally wrapping err.
func NewCodedError(code ErrorCode, err error) *CodedError {
	return &CodedError{Code: code, Err: err}
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return e.Code.MessageID() + ": " + e.Err.Error()
	}
	return e.Code.MessageID()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// CodeOf returns the error code carried by the first CodedError in err's
// chain.
func CodeOf(err error) (ErrorCode, bool) {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code, true
	}
	return 0, false
}
