package model

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoActiveBets        = errors.New("no active bets")
	ErrInvalidStake        = errors.New("stake must be positive")
	ErrUnrecognizedTarget  = errors.New("unrecognized bet target")
	ErrSeatTaken           = errors.New("seat token is not the current seat")
)
