package repository

import (
	"hall-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// psql builds queries with Postgres-style $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Hall    HallRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
