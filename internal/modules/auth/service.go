package auth

import (
	"context"
	"errors"
	"fmt"

	"eventzen/internal/domain"
	jwtsvc "eventzen/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users userRepo
	jwt   *jwtsvc.Service
}

func NewService(users userRepo, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Name:         req.Name,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

// Guest mints a first-class anonymous principal. Guest bookings carry a
// real user id like any other; there is no fallback identity anywhere in
// the request path.
func (s *Service) Guest(ctx context.Context) (*AuthResponse, error) {
	u := &domain.User{
		Email: fmt.Sprintf("guest-%s@guests.eventzen.local", uuid.New().String()),
		Role:  domain.RoleGuest,
		Name:  "Guest",
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) issue(u *domain.User) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}
