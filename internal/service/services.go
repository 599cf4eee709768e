package service

import (
	"github.com/devprince/ecommerce-api/internal/config"
	"github.com/devprince/ecommerce-api/internal/mail"
	"github.com/devprince/ecommerce-api/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Token   *TokenService
	Sweeper *Sweeper
}

func NewServices(repos *repository.Repositories, mailer mail.Mailer, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg)
	return &Services{
		Auth:    NewAuthService(repos.User, tokens, mailer, cfg),
		Token:   tokens,
		Sweeper: NewSweeper(repos.User, cfg.SweepInterval, cfg.UnverifiedMaxAge),
	}
}
