package usecase

import (
	"context"
	"fmt"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req request.RegisterRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Login(ctx context.Context, req request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, actor utils.Actor) (*response.UserResponse, error)
}

type authService struct {
	repo        *repository.Repository
	expiryHours int
	log         *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:        repo,
		expiryHours: config.Session.ExpiryHours,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req request.RegisterRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := entity.RoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("userId", user.ID.String()),
		zap.String("role", string(user.Role)))

	return s.issueSession(ctx, user, userAgent, ipAddress)
}

func (s *authService) Login(ctx context.Context, req request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("userId", user.ID.String()))

	return s.issueSession(ctx, user, userAgent, ipAddress)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, actor utils.Actor) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// issueSession creates an opaque bearer token valid for the configured window
func (s *authService) issueSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*response.AuthResponse, error) {
	expiresAt := time.Now().Add(time.Duration(s.expiryHours) * time.Hour)

	session := &entity.Session{
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: expiresAt,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     session.Token.String(),
		ExpiresAt: &expiresAt,
	}, nil
}
