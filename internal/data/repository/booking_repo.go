package repository

import (
	"context"
	"fmt"

	"trek-booking/internal/data/entity"
	"trek-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
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

const bookingColumns = `id, order_id, user_id, trek_id, start_date,
		       participants, total_price, status, contact_phone, notes,
		       created_at, updated_at, deleted_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.UserID,
		&booking.TrekID,
		&booking.StartDate,
		&booking.Participants,
		&booking.TotalPrice,
		&booking.Status,
		&booking.ContactPhone,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_id, user_id, trek_id, start_date,
		                     participants, total_price, status,
		                     contact_phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.UserID,
		booking.TrekID,
		booking.StartDate,
		booking.Participants,
		booking.TotalPrice,
		booking.Status,
		booking.ContactPhone,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL
	`

	booking, err := scanBooking(br.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (br *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := br.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		br.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (br *bookingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND deleted_at IS NULL`

	var count int64
	err := br.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		br.log.Error("Database error counting user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (br *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := br.db.Query(ctx, query, limit, offset)
	if err != nil {
		br.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (br *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE deleted_at IS NULL`

	var count int64
	err := br.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		br.log.Error("Database error counting bookings", zap.Error(err))
		return 0, fmt.Errorf("count all bookings: %w", err)
	}

	return count, nil
}

func (br *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET start_date = $2, participants = $3, total_price = $4,
		    status = $5, contact_phone = $6, notes = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.StartDate,
		booking.Participants,
		booking.TotalPrice,
		booking.Status,
		booking.ContactPhone,
		booking.Notes,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found or already deleted", booking.ID.String())
	}

	return nil
}

func (br *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
