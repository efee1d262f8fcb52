package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load(ctx context.Context) (*Profile, error)
	Register(ctx context.Context, name, pin string) (Profile, error)
	Authenticate(profile Profile, pin string) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *Service) Load(ctx context.Context) (*Profile, error) {
	profile, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return profile, nil
}

func (s *Service) Register(ctx context.Context, name, pin string) (Profile, error) {
	if err := s.validator.ValidateRegister(name, pin); err != nil {
		s.log.Debug("validation failed", "error", err)
		return Profile{}, err
	}

	existing, err := s.repo.Load(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if existing != nil {
		return Profile{}, ErrAlreadyRegistered
	}

	profile := Profile{Name: strings.TrimSpace(name), Pin: pin}
	if err := s.repo.Save(ctx, profile); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}

	s.log.Info("profile registered", "name", profile.Name)
	return profile, nil
}

// Authenticate сравнивает PIN побайтно с сохранённым.
func (s *Service) Authenticate(profile Profile, pin string) error {
	if pin != profile.Pin {
		return ErrInvalidPin
	}

	return nil
}
