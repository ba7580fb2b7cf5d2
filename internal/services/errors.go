package services

//go:generate mockgen -destination=mock_services.go -package=services github.com/sbilibin2017/team-manager/internal/services KafkaWriter,JWTGenerator,HighlightCache

import "errors"

// Error variables
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrReferenceNotFound  = errors.New("referenced record does not exist")
	ErrInvalidInput       = errors.New("invalid input")
)
