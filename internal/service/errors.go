package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAgreementExists   = errors.New("agreement already exists")
	ErrPeriodUnavailable = errors.New("property already rented for the given period")
	ErrNoPending         = errors.New("no pending agreements")
)
