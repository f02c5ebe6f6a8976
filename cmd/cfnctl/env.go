package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env holds the configuration shared by all commands. Access keys are
// optional; leaving both empty uses the SDK's ambient credential chain.
type Env struct {
	AccessKey string        `env:"CFN_ACCESS_KEY" validate:"required_with=SecretKey"`
	SecretKey string        `env:"CFN_SECRET_KEY" validate:"required_with=AccessKey"`
	Region    string        `env:"AWS_REGION"`
	LogLevel  zapcore.Level `env:"CFN_LOG_LEVEL" envDefault:"info"`
}

func loadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "parsing environment")
	}
	if err := validator.New().Struct(e); err != nil {
		return e, errors.Wrap(err, "CFN_ACCESS_KEY and CFN_SECRET_KEY must be set together")
	}
	return e, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
