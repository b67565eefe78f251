package ports

import "go.trai.ch/nixcrate/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetLevel drops messages below level.
	SetLevel(level domain.LogLevel)
}
