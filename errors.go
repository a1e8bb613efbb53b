package sortbench

import "errors"

var (
	ErrInvalidRange       = errors.New("invalid range")
	ErrInvalidSize        = errors.New("invalid size")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrVerificationFailed = errors.New("verification failed")
)
