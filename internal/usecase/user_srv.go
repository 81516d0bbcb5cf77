package usecase

import (
	"context"
	"fmt"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context, req request.ListUsersRequest) (*response.UserListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	Update(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, actor utils.Actor, id uuid.UUID) error

	AddFavorite(ctx context.Context, actor utils.Actor, hallID uuid.UUID) error
	RemoveFavorite(ctx context.Context, actor utils.Actor, hallID uuid.UUID) error
	ListFavorites(ctx context.Context, actor utils.Actor) ([]response.HallResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, req request.ListUsersRequest) (*response.UserListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	filter := repository.UserFilter{
		Role:   entity.UserRole(req.Role),
		Search: req.Search,
	}

	users, err := s.repo.User.List(ctx, filter, req.Sort, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	total, err := s.repo.User.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return &response.UserListResponse{
		Users:      items,
		Pagination: response.NewPaginationMeta(page, limit, total),
	}, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Update lets users edit their own profile; role changes are reserved for
// admins and silently ignored otherwise
func (s *userService) Update(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateUserRequest) (*response.UserResponse, error) {
	role := entity.UserRole(actor.Role)
	if actor.UserID != id && !role.IsPrivileged() {
		return nil, fmt.Errorf("%w to update this user", ErrForbidden)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Role != nil && role.IsPrivileged() {
		user.Role = entity.UserRole(*req.Role)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Delete removes the account and revokes every live session so stale tokens
// stop working immediately. Only a super-admin may delete another super-admin.
func (s *userService) Delete(ctx context.Context, actor utils.Actor, id uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.Role == entity.RoleSuperAdmin && entity.UserRole(actor.Role) != entity.RoleSuperAdmin {
		return fmt.Errorf("%w to delete a super-admin", ErrForbidden)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		return fmt.Errorf("revoking sessions: %w", err)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	s.log.Info("User deleted",
		zap.String("userId", id.String()),
		zap.String("actorId", actor.UserID.String()))

	return nil
}

func (s *userService) AddFavorite(ctx context.Context, actor utils.Actor, hallID uuid.UUID) error {
	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return fmt.Errorf("finding hall: %w", err)
	}
	if hall == nil {
		return ErrHallNotFound
	}

	exists, err := s.repo.User.IsFavorite(ctx, actor.UserID, hallID)
	if err != nil {
		return fmt.Errorf("checking favorite: %w", err)
	}
	if exists {
		return ErrAlreadyFavorite
	}

	if err := s.repo.User.AddFavorite(ctx, actor.UserID, hallID); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

func (s *userService) RemoveFavorite(ctx context.Context, actor utils.Actor, hallID uuid.UUID) error {
	exists, err := s.repo.User.IsFavorite(ctx, actor.UserID, hallID)
	if err != nil {
		return fmt.Errorf("checking favorite: %w", err)
	}
	if !exists {
		return ErrNotFavorite
	}

	if err := s.repo.User.RemoveFavorite(ctx, actor.UserID, hallID); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

func (s *userService) ListFavorites(ctx context.Context, actor utils.Actor) ([]response.HallResponse, error) {
	halls, err := s.repo.User.FindFavoriteHalls(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	items := make([]response.HallResponse, 0, len(halls))
	for _, hall := range halls {
		items = append(items, response.HallToResponse(hall))
	}
	return items, nil
}
