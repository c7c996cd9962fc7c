package main

import (
	"log/slog"

	"docvault/pkg/password"
	"docvault/pkg/ratelimit"
	"docvault/pkg/token"
	"docvault/pkg/upload"
)

// app wires the guard components to their collaborators. Everything is
// injected; there is no module-level state.
type app struct {
	cfg       *Config
	logger    *slog.Logger
	users     UserStore
	documents DocumentStore
	storage   BlobStorage
	hasher    *password.Hasher
	tokens    *token.Service
	guard     *AuthGuard
	validator *upload.Validator

	generalLimit *ratelimit.Limiter
	authLimit    *ratelimit.Limiter
	uploadLimit  *ratelimit.Limiter
}

func newApp(cfg *Config, logger *slog.Logger, users UserStore, documents DocumentStore, storage BlobStorage) (*app, error) {
	hasher, err := password.NewHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:          cfg,
		logger:       logger,
		users:        users,
		documents:    documents,
		storage:      storage,
		hasher:       hasher,
		tokens:       tokens,
		guard:        NewAuthGuard(tokens, users),
		validator:    upload.NewValidator(cfg.MaxFileSize, cfg.AllowedFileTypes),
		generalLimit: ratelimit.New(cfg.GeneralRateMax, cfg.RateWindow),
		authLimit:    ratelimit.New(cfg.AuthRateMax, cfg.RateWindow),
		uploadLimit:  ratelimit.New(cfg.UploadRateMax, cfg.UploadRateWindow),
	}
	a.generalLimit.StartSweeper()
	a.authLimit.StartSweeper()
	a.uploadLimit.StartSweeper()
	return a, nil
}

func (a *app) Close() {
	a.generalLimit.Stop()
	a.authLimit.Stop()
	a.uploadLimit.Stop()
}
