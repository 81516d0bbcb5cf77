package usecase

import (
	"context"
	"strings"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/cache"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. Filtering implements just
// enough of the real SQL semantics for the cases the tests exercise.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	favorites map[uuid.UUID]map[uuid.UUID]bool
	halls     *fakeHallRepo
}

func newFakeUserRepo(halls *fakeHallRepo) *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uuid.UUID]*entity.User),
		favorites: make(map[uuid.UUID]map[uuid.UUID]bool),
		halls:     halls,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter, _ string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		if f.matches(user, filter) {
			clone := *user
			out = append(out, &clone)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeUserRepo) Count(_ context.Context, filter repository.UserFilter) (int64, error) {
	var n int64
	for _, user := range f.users {
		if f.matches(user, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) matches(user *entity.User, filter repository.UserFilter) bool {
	if filter.Role != "" && user.Role != filter.Role {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(user.FirstName + " " + user.LastName + " " + user.Email)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) AddFavorite(_ context.Context, userID, hallID uuid.UUID) error {
	if f.favorites[userID] == nil {
		f.favorites[userID] = make(map[uuid.UUID]bool)
	}
	f.favorites[userID][hallID] = true
	return nil
}

func (f *fakeUserRepo) RemoveFavorite(_ context.Context, userID, hallID uuid.UUID) error {
	delete(f.favorites[userID], hallID)
	return nil
}

func (f *fakeUserRepo) IsFavorite(_ context.Context, userID, hallID uuid.UUID) (bool, error) {
	return f.favorites[userID][hallID], nil
}

func (f *fakeUserRepo) FindFavoriteHalls(ctx context.Context, userID uuid.UUID) ([]*entity.Hall, error) {
	var out []*entity.Hall
	for hallID := range f.favorites[userID] {
		hall, _ := f.halls.FindByID(ctx, hallID)
		if hall != nil {
			out = append(out, hall)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	clone := *session
	f.sessions[session.Token.String()] = &clone
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

type fakeHallRepo struct {
	halls map[uuid.UUID]*entity.Hall
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{halls: make(map[uuid.UUID]*entity.Hall)}
}

func (f *fakeHallRepo) Create(_ context.Context, hall *entity.Hall) error {
	if hall.ID == uuid.Nil {
		hall.ID = uuid.New()
	}
	hall.CreatedAt = time.Now()
	clone := *hall
	f.halls[hall.ID] = &clone
	return nil
}

func (f *fakeHallRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hall, error) {
	hall, ok := f.halls[id]
	if !ok {
		return nil, nil
	}
	clone := *hall
	return &clone, nil
}

func (f *fakeHallRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Hall, error) {
	var out []*entity.Hall
	for _, hall := range f.halls {
		if hall.OwnerID == ownerID {
			clone := *hall
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeHallRepo) FindIDsByOwner(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, hall := range f.halls {
		if hall.OwnerID == ownerID {
			out = append(out, hall.ID)
		}
	}
	return out, nil
}

func (f *fakeHallRepo) List(_ context.Context, filter repository.HallFilter, _ string, limit, offset int) ([]*entity.Hall, error) {
	var out []*entity.Hall
	for _, hall := range f.halls {
		if f.matches(hall, filter) {
			clone := *hall
			out = append(out, &clone)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeHallRepo) Count(_ context.Context, filter repository.HallFilter) (int64, error) {
	var n int64
	for _, hall := range f.halls {
		if f.matches(hall, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeHallRepo) matches(hall *entity.Hall, filter repository.HallFilter) bool {
	if filter.Status != "" && hall.Status != filter.Status {
		return false
	}
	if filter.City != "" && !strings.EqualFold(hall.Location.City, filter.City) {
		return false
	}
	if filter.MinPrice != nil && hall.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && hall.Price > *filter.MaxPrice {
		return false
	}
	if filter.MinCapacity > 0 && hall.Capacity < filter.MinCapacity {
		return false
	}
	for _, want := range filter.Amenities {
		found := false
		for _, have := range hall.Amenities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(hall.Name + " " + hall.Description + " " + hall.Location.City)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func (f *fakeHallRepo) Update(_ context.Context, hall *entity.Hall) error {
	clone := *hall
	f.halls[hall.ID] = &clone
	return nil
}

func (f *fakeHallRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.halls, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = time.Now()
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter repository.BookingFilter, _ string, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if f.matches(booking, filter) {
			clone := *booking
			out = append(out, &clone)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeBookingRepo) Count(_ context.Context, filter repository.BookingFilter) (int64, error) {
	var n int64
	for _, booking := range f.bookings {
		if f.matches(booking, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) matches(booking *entity.Booking, filter repository.BookingFilter) bool {
	if filter.UserID != nil && booking.UserID != *filter.UserID {
		return false
	}
	if len(filter.HallIDs) > 0 {
		found := false
		for _, id := range filter.HallIDs {
			if booking.HallID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Status != "" && booking.BookingStatus != filter.Status {
		return false
	}
	return true
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) ExistsActiveForDate(_ context.Context, hallID uuid.UUID, eventDate time.Time) (bool, error) {
	for _, booking := range f.bookings {
		if booking.HallID != hallID {
			continue
		}
		if booking.BookingStatus != entity.BookingStatusPending && booking.BookingStatus != entity.BookingStatusConfirmed {
			continue
		}
		if booking.EventDate.Equal(eventDate) {
			return true, nil
		}
	}
	return false, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// testEnv wires the services over fresh in-memory repositories
type testEnv struct {
	repo    *repository.Repository
	service *Service
}

func newTestEnv() *testEnv {
	halls := newFakeHallRepo()
	repo := &repository.Repository{
		User:    newFakeUserRepo(halls),
		Session: newFakeSessionRepo(),
		Hall:    halls,
		Booking: newFakeBookingRepo(),
	}

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	var noCache *cache.Cache
	service := NewService(repo, noCache, config, zap.NewNop())

	return &testEnv{repo: repo, service: service}
}

func (e *testEnv) addUser(role entity.UserRole) *entity.User {
	user := &entity.User{
		FirstName:    "Test",
		LastName:     string(role),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	e.repo.User.Create(context.Background(), user)
	return user
}

func (e *testEnv) addHall(ownerID uuid.UUID, status entity.HallStatus) *entity.Hall {
	hall := &entity.Hall{
		Name:        "Grand Pavilion",
		Description: "Spacious hall",
		OwnerID:     ownerID,
		Location:    entity.Location{Address: "1 Main St", City: "Mumbai", State: "MH", Pincode: "400001"},
		Capacity:    300,
		Price:       50000,
		PriceType:   entity.PricePerDay,
		Status:      status,
	}
	e.repo.Hall.Create(context.Background(), hall)
	return hall
}

func actorFor(user *entity.User) utils.Actor {
	return utils.Actor{UserID: user.ID, Role: string(user.Role)}
}
