package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// HallFilter narrows hall listing queries. Zero values mean "no restriction".
type HallFilter struct {
	Search      string
	City        string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity int
	Amenities   []string
	Status      entity.HallStatus
}

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hall, error)
	FindIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	List(ctx context.Context, filter HallFilter, sort string, limit, offset int) ([]*entity.Hall, error)
	Count(ctx context.Context, filter HallFilter) (int64, error)
	Update(ctx context.Context, hall *entity.Hall) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

var hallColumns = []string{
	"id", "name", "description", "owner_id",
	"address", "city", "state", "pincode", "lat", "lng",
	"capacity", "price", "price_type", "amenities", "images", "availability",
	"rating", "review_count", "status", "created_at", "updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHall(row rowScanner) (*entity.Hall, error) {
	var hall entity.Hall
	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Description,
		&hall.OwnerID,
		&hall.Location.Address,
		&hall.Location.City,
		&hall.Location.State,
		&hall.Location.Pincode,
		&hall.Location.Lat,
		&hall.Location.Lng,
		&hall.Capacity,
		&hall.Price,
		&hall.PriceType,
		&hall.Amenities,
		&hall.Images,
		&hall.Availability,
		&hall.Rating,
		&hall.ReviewCount,
		&hall.Status,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	if hall.ID == uuid.Nil {
		hall.ID = uuid.New()
	}
	now := time.Now()
	hall.CreatedAt = now
	hall.UpdatedAt = now

	query, args, err := psql.Insert("halls").
		Columns(hallColumns...).
		Values(
			hall.ID,
			hall.Name,
			hall.Description,
			hall.OwnerID,
			hall.Location.Address,
			hall.Location.City,
			hall.Location.State,
			hall.Location.Pincode,
			hall.Location.Lat,
			hall.Location.Lng,
			hall.Capacity,
			hall.Price,
			hall.PriceType,
			hall.Amenities,
			hall.Images,
			hall.Availability,
			hall.Rating,
			hall.ReviewCount,
			hall.Status,
			hall.CreatedAt,
			hall.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert hall: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
			zap.String("owner_id", hall.OwnerID.String()),
		)
		return fmt.Errorf("create hall %s: %w", hall.ID.String(), err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query, args, err := psql.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select hall: %w", err)
	}

	hall, err := scanHall(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return hall, nil
}

func (r *hallRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hall, error) {
	query, args, err := psql.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select halls by owner: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find halls by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find halls by owner %s: %w", ownerID.String(), err)
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

func (r *hallRepository) FindIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM halls WHERE owner_id = $1`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find hall IDs by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find hall IDs by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan hall ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// applyHallFilter translates the filter into WHERE clauses. Amenity matching is
// intersection semantics: the stored array must contain every requested tag.
func applyHallFilter(b squirrel.SelectBuilder, filter HallFilter) squirrel.SelectBuilder {
	if filter.Status != "" {
		b = b.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.City != "" {
		b = b.Where(squirrel.ILike{"city": "%" + filter.City + "%"})
	}
	if filter.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.MinCapacity > 0 {
		b = b.Where(squirrel.GtOrEq{"capacity": filter.MinCapacity})
	}
	if len(filter.Amenities) > 0 {
		b = b.Where("amenities @> ?", filter.Amenities)
	}
	for _, token := range strings.Fields(filter.Search) {
		pattern := "%" + token + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
			squirrel.ILike{"city": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	return b
}

func hallOrderBy(sort string) string {
	switch sort {
	case "price_asc":
		return "price ASC"
	case "price_desc":
		return "price DESC"
	case "rating":
		return "rating DESC"
	case "capacity":
		return "capacity DESC"
	default:
		return "created_at DESC"
	}
}

func (r *hallRepository) List(ctx context.Context, filter HallFilter, sort string, limit, offset int) ([]*entity.Hall, error) {
	b := psql.Select(hallColumns...).From("halls")
	b = applyHallFilter(b, filter)
	b = b.OrderBy(hallOrderBy(sort)).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list halls: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list halls",
			zap.Error(err),
			zap.String("sort", sort),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list halls: %w", err)
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

func (r *hallRepository) Count(ctx context.Context, filter HallFilter) (int64, error) {
	b := psql.Select("COUNT(*)").From("halls")
	b = applyHallFilter(b, filter)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count halls: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count halls", zap.Error(err))
		return 0, fmt.Errorf("count halls: %w", err)
	}

	return count, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	hall.UpdatedAt = time.Now()

	query, args, err := psql.Update("halls").
		Set("name", hall.Name).
		Set("description", hall.Description).
		Set("address", hall.Location.Address).
		Set("city", hall.Location.City).
		Set("state", hall.Location.State).
		Set("pincode", hall.Location.Pincode).
		Set("lat", hall.Location.Lat).
		Set("lng", hall.Location.Lng).
		Set("capacity", hall.Capacity).
		Set("price", hall.Price).
		Set("price_type", hall.PriceType).
		Set("amenities", hall.Amenities).
		Set("images", hall.Images).
		Set("availability", hall.Availability).
		Set("rating", hall.Rating).
		Set("review_count", hall.ReviewCount).
		Set("status", hall.Status).
		Set("updated_at", hall.UpdatedAt).
		Where(squirrel.Eq{"id": hall.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hall: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", hall.ID.String())
	}

	return nil
}

func (r *hallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM halls WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hall",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return fmt.Errorf("delete hall %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", id.String())
	}

	r.log.Info("Hall deleted", zap.String("hall_id", id.String()))
	return nil
}
