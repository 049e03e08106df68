// Package logging builds the zap logger shared by the server and its services.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/recipebox/backend/config"
)

// New returns a JSON logger at info level in production and a console logger
// at debug level everywhere else.
func New(env config.Environment) (*zap.Logger, error) {
	var cfg zap.Config
	if env == config.Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if env == config.Test {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build(zap.Fields(zap.String("env", string(env))))
}
