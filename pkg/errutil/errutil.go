package errutil

import (
	"github.com/pkg/errors"
)

var (
	ErrIllegalParameter          = errors.New("illegal parameter")
	ErrIncompleteSelection       = errors.New("please complete all selections")
	ErrSelfDiscard               = errors.New("winner cannot discard their own tile")
	ErrInvalidSeat               = errors.New("invalid seat")
	ErrInvalidMeldCount          = errors.New("meld count must not be negative")
	ErrUnknownMultiplier         = errors.New("unknown multiplier")
	ErrUnreachableClassification = errors.New("unreachable classification")
	ErrServerInternal            = errors.New("server internal error")
	ErrPermissionDenied          = errors.New("permission denied")
)

// 输入校验类错误, 在计分前返回给调用方
var validations = map[error]struct{}{
	ErrIllegalParameter:    {},
	ErrIncompleteSelection: {},
	ErrSelfDiscard:         {},
	ErrInvalidSeat:         {},
	ErrInvalidMeldCount:    {},
	ErrUnknownMultiplier:   {},
}

//Code code for the error
func Code(err error) int {
	if c, ok := errs[errors.Cause(err)]; ok {
		return c
	}
	return Unknown
}

// IsValidation reports whether err (or its cause) was produced by input validation.
func IsValidation(err error) bool {
	_, ok := validations[errors.Cause(err)]
	return ok
}
