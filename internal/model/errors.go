package model

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidBet          = errors.New("invalid bet")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrSpinInProgress      = errors.New("spin already in progress")
	ErrBonusActive         = errors.New("bet is locked while free spins remain")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrSessionNotFound     = errors.New("session not found")
)
