package repository

import (
	"context"
	"fmt"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserFilter narrows the admin user listing. Zero values mean "no restriction".
type UserFilter struct {
	Role   entity.UserRole
	Search string
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter, sort string, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Favorites
	AddFavorite(ctx context.Context, userID, hallID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, hallID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, hallID uuid.UUID) (bool, error)
	FindFavoriteHalls(ctx context.Context, userID uuid.UUID) ([]*entity.Hall, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

var userColumns = []string{
	"id", "first_name", "last_name", "email", "password", "phone", "address", "role",
	"created_at", "updated_at",
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Address,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PasswordHash,
			user.Phone,
			user.Address,
			user.Role,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user by email: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func applyUserFilter(b squirrel.SelectBuilder, filter UserFilter) squirrel.SelectBuilder {
	if filter.Role != "" {
		b = b.Where(squirrel.Eq{"role": filter.Role})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	return b
}

func userOrderBy(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "name":
		return "first_name ASC, last_name ASC"
	default: // newest
		return "created_at DESC"
	}
}

func (r *userRepository) List(ctx context.Context, filter UserFilter, sort string, limit, offset int) ([]*entity.User, error) {
	b := psql.Select(userColumns...).From("users")
	b = applyUserFilter(b, filter)
	b = b.OrderBy(userOrderBy(sort)).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	b := psql.Select("COUNT(*)").From("users")
	b = applyUserFilter(b, filter)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	query, args, err := psql.Update("users").
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("phone", user.Phone).
		Set("address", user.Address).
		Set("role", user.Role).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, hallID uuid.UUID) error {
	query := `INSERT INTO user_favorites (user_id, hall_id, created_at) VALUES ($1, $2, NOW())`

	if _, err := r.db.Exec(ctx, query, userID, hallID); err != nil {
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hall_id", hallID.String()),
		)
		return fmt.Errorf("add favorite hall %s: %w", hallID.String(), err)
	}

	return nil
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, hallID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND hall_id = $2`

	result, err := r.db.Exec(ctx, query, userID, hallID)
	if err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hall_id", hallID.String()),
		)
		return fmt.Errorf("remove favorite hall %s: %w", hallID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite not found")
	}

	return nil
}

func (r *userRepository) IsFavorite(ctx context.Context, userID, hallID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_favorites WHERE user_id = $1 AND hall_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, hallID).Scan(&exists); err != nil {
		r.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hall_id", hallID.String()),
		)
		return false, fmt.Errorf("check favorite hall %s: %w", hallID.String(), err)
	}

	return exists, nil
}

func (r *userRepository) FindFavoriteHalls(ctx context.Context, userID uuid.UUID) ([]*entity.Hall, error) {
	cols := make([]string, len(hallColumns))
	for i, c := range hallColumns {
		cols[i] = "h." + c
	}

	query, args, err := psql.Select(cols...).
		From("halls h").
		Join("user_favorites f ON f.hall_id = h.id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select favorite halls: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find favorite halls",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorite halls for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, hall)
	}

	return halls, rows.Err()
}
