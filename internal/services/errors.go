package services

import "errors"

var (
	ErrDuplicateName      = errors.New("food name already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoPreferences      = errors.New("no preferred foods selected")
)
