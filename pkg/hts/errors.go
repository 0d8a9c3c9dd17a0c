package hts

// HTSError is the embedded base for the operation-labelled errors this
// package returns. Callers can still unwrap to the underlying SDK
// error via Unwrap.
type HTSError struct {
	Message string
	Cause   error
}

func (errorValue HTSError) Error() string {
	return errorValue.Message
}

func (errorValue HTSError) Unwrap() error {
	return errorValue.Cause
}

type AccountCreateError struct {
	HTSError
}

type CollectionCreateError struct {
	HTSError
	Name   string
	Symbol string
}

type MintError struct {
	HTSError
	TokenID     string
	FailedBatch int
}

type AssociationError struct {
	HTSError
	AccountID string
	TokenID   string
}

type TransferError struct {
	HTSError
	TokenID      string
	SerialNumber int64
	From         string
	To           string
}

type BalanceQueryError struct {
	HTSError
	AccountID string
}

type ValidationError struct {
	HTSError
	Field string
}

func newValidationError(field string, message string) error {
	return ValidationError{
		HTSError: HTSError{Message: message},
		Field:    field,
	}
}
