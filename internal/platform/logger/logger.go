package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the service logger. LOG_MODE=development switches to the
// human-readable console encoder.
func New() (*zap.Logger, error) {
	if os.Getenv("LOG_MODE") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
