package service

import "errors"

// Sentinel errors returned by Session operations.
var (
	ErrNotStarted           = errors.New("session not started")
	ErrSeasonOver           = errors.New("season has no weeks left")
	ErrOfferNotFound        = errors.New("job offer not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrSigningAlreadyFailed = errors.New("signing already written off")
	ErrInvalidReport        = errors.New("invalid report")
	ErrInvalidTier          = errors.New("invalid wonderkid tier")
	ErrNotIndependent       = errors.New("scout is not on the independent path")
	ErrNoDepartment         = errors.New("scout cannot run a scouting department yet")
)
