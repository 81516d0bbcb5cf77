package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUserService struct {
	listReq request.ListUsersRequest
}

func (s *stubUserService) List(_ context.Context, req request.ListUsersRequest) (*response.UserListResponse, error) {
	s.listReq = req
	return &response.UserListResponse{Users: []response.UserResponse{}}, nil
}

func (s *stubUserService) Get(context.Context, uuid.UUID) (*response.UserResponse, error) {
	return nil, nil
}

func (s *stubUserService) Update(context.Context, utils.Actor, uuid.UUID, request.UpdateUserRequest) (*response.UserResponse, error) {
	return nil, nil
}

func (s *stubUserService) Delete(context.Context, utils.Actor, uuid.UUID) error { return nil }

func (s *stubUserService) AddFavorite(context.Context, utils.Actor, uuid.UUID) error { return nil }

func (s *stubUserService) RemoveFavorite(context.Context, utils.Actor, uuid.UUID) error { return nil }

func (s *stubUserService) ListFavorites(context.Context, utils.Actor) ([]response.HallResponse, error) {
	return nil, nil
}

func TestListUsersTreatsRoleAllAsNoFilter(t *testing.T) {
	service := &stubUserService{}
	handler := NewUserHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users?role=all", nil)
	rec := httptest.NewRecorder()

	handler.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", service.listReq.Role)
}

func TestListUsersPassesRoleFilter(t *testing.T) {
	service := &stubUserService{}
	handler := NewUserHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users?role=hall-owner&page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	handler.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hall-owner", service.listReq.Role)
	assert.Equal(t, 2, service.listReq.Page)
	assert.Equal(t, 5, service.listReq.Limit)
}
