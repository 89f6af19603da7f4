package errorx

import "strings"

// CodeError carries a responsex state code plus optional detail messages.
// Error() returns the bare code so handlers can feed it straight into responsex.Json.
type CodeError struct {
	Code    string
	Message string
}

func New(code string, messages ...string) *CodeError {
	e := &CodeError{Code: code}
	if len(messages) > 0 {
		e.Message = strings.Join(messages, ";")
	}
	return e
}

func (e *CodeError) Error() string {
	return e.Code
}

func (e *CodeError) GetMessage() string {
	return e.Message
}
