package dataset

import "errors"

var (
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrInvalidTier      = errors.New("tier out of range")
	ErrUndeclaredRegion = errors.New("region not declared")
	ErrEmptyRegion      = errors.New("declared region has no cities")
	// ErrContentGap marks a service without a content-table entry, or a
	// content-table entry without a service.
	ErrContentGap = errors.New("service content gap")
)
