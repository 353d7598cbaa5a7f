package services

import "errors"

var (
	ErrOutputSetup  = errors.New("failed to prepare output directory")
	ErrLoadFailed   = errors.New("failed to load attendance logs")
	ErrReportFailed = errors.New("failed to write attendance report")
)
