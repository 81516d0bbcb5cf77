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

// BookingFilter narrows booking listing queries. Zero values mean "no restriction".
type BookingFilter struct {
	UserID  *uuid.UUID
	HallIDs []uuid.UUID
	Status  entity.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter, sort string, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error

	// ExistsActiveForDate reports whether a pending or confirmed booking already
	// holds the hall on the given calendar date. Exact date equality, not a range
	// overlap check.
	ExistsActiveForDate(ctx context.Context, hallID uuid.UUID, eventDate time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

var bookingColumns = []string{
	"id", "hall_id", "user_id", "event_type", "event_date", "start_time", "end_time",
	"guest_count", "total_amount", "advance_amount", "balance_amount",
	"payment_status", "booking_status", "special_requests", "cancellation_reason",
	"created_at", "updated_at",
}

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.HallID,
		&booking.UserID,
		&booking.EventType,
		&booking.EventDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.GuestCount,
		&booking.TotalAmount,
		&booking.AdvanceAmount,
		&booking.BalanceAmount,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.SpecialRequests,
		&booking.CancellationReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query, args, err := psql.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.HallID,
			booking.UserID,
			booking.EventType,
			booking.EventDate,
			booking.StartTime,
			booking.EndTime,
			booking.GuestCount,
			booking.TotalAmount,
			booking.AdvanceAmount,
			booking.BalanceAmount,
			booking.PaymentStatus,
			booking.BookingStatus,
			booking.SpecialRequests,
			booking.CancellationReason,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("hall_id", booking.HallID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select booking: %w", err)
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func applyBookingFilter(b squirrel.SelectBuilder, filter BookingFilter) squirrel.SelectBuilder {
	if filter.UserID != nil {
		b = b.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.HallIDs != nil {
		b = b.Where(squirrel.Eq{"hall_id": filter.HallIDs})
	}
	if filter.Status != "" {
		b = b.Where(squirrel.Eq{"booking_status": filter.Status})
	}
	return b
}

func bookingOrderBy(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "upcoming":
		return "event_date ASC"
	case "price-high":
		return "total_amount DESC"
	case "price-low":
		return "total_amount ASC"
	default: // newest
		return "created_at DESC"
	}
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, sort string, limit, offset int) ([]*entity.Booking, error) {
	b := psql.Select(bookingColumns...).From("bookings")
	b = applyBookingFilter(b, filter)
	b = b.OrderBy(bookingOrderBy(sort)).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("sort", sort),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	b := psql.Select("COUNT(*)").From("bookings")
	b = applyBookingFilter(b, filter)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count bookings: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now()

	query, args, err := psql.Update("bookings").
		Set("event_type", booking.EventType).
		Set("event_date", booking.EventDate).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("guest_count", booking.GuestCount).
		Set("total_amount", booking.TotalAmount).
		Set("advance_amount", booking.AdvanceAmount).
		Set("balance_amount", booking.BalanceAmount).
		Set("payment_status", booking.PaymentStatus).
		Set("booking_status", booking.BookingStatus).
		Set("special_requests", booking.SpecialRequests).
		Set("cancellation_reason", booking.CancellationReason).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) ExistsActiveForDate(ctx context.Context, hallID uuid.UUID, eventDate time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE hall_id = $1
			  AND event_date = $2
			  AND booking_status IN ('pending', 'confirmed')
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, hallID, eventDate).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check booking date availability",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.Time("event_date", eventDate),
		)
		return false, fmt.Errorf("check booking for hall %s: %w", hallID.String(), err)
	}

	return exists, nil
}
