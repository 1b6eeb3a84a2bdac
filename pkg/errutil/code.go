package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	rsIllegalParameter
	rsIncompleteSelection
	rsSelfDiscard
	rsInvalidSeat
	rsInvalidMeldCount
	rsUnknownMultiplier
	rsUnreachableClassification
	rsServerInternal
	rsPermissionDenied
)

var errs = map[error]int{
	ErrIllegalParameter:          rsIllegalParameter,
	ErrIncompleteSelection:       rsIncompleteSelection,
	ErrSelfDiscard:               rsSelfDiscard,
	ErrInvalidSeat:               rsInvalidSeat,
	ErrInvalidMeldCount:          rsInvalidMeldCount,
	ErrUnknownMultiplier:         rsUnknownMultiplier,
	ErrUnreachableClassification: rsUnreachableClassification,
	ErrServerInternal:            rsServerInternal,
	ErrPermissionDenied:          rsPermissionDenied,
}
