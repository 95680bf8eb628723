package repository

import (
	"context"
	"database/sql"
	"time"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/sirupsen/logrus"
)

type IBookingRepository interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	GetBooking(ctx context.Context, id int64) (*model.Booking, error)
	CreateBooking(ctx context.Context, b *model.Booking) error
	UpdateBooking(ctx context.Context, b *model.Booking) error
	DeleteBooking(ctx context.Context, id int64) error

	ListCalendar(ctx context.Context) ([]model.CalendarEntry, error)
	ListCalendarInfo(ctx context.Context, day time.Time) ([]model.CalendarInfo, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]model.UpcomingEvent, error)
	CountByCategory(ctx context.Context) ([]model.CategoryCount, error)
	CountBookings(ctx context.Context) (int, error)
}

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingQuery = `SELECT b.id, b.category_id, c.name, b.book_date, b.booker_first_name, b.booker_last_name,
	b.phone_number, b.number_of_guests, b.price, b.additional_info, b.created_at, b.updated_at
	FROM bookings b JOIN categories c ON c.id = b.category_id`

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.CategoryID, &b.CategoryName, &b.BookDate, &b.BookerFirstName, &b.BookerLastName,
		&b.PhoneNumber, &b.NumberOfGuests, &b.Price, &b.AdditionalInfo, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]model.Booking, error) {
	log := logger.Log.WithField("table", "bookings")
	log.Info("Executing query to list bookings")

	rows, err := r.DB.QueryContext(ctx, bookingQuery+` ORDER BY b.book_date DESC, b.id DESC`)
	if err != nil {
		log.WithError(err).Error("Failed to execute list bookings query")
		return nil, err
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			log.WithError(err).Error("Failed to scan booking row")
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	var b model.Booking
	if err := scanBooking(r.DB.QueryRowContext(ctx, bookingQuery+` WHERE b.id = $1`, id), &b); err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b *model.Booking) error {
	log := logger.Log.WithFields(logrus.Fields{
		"category_id": b.CategoryID,
		"book_date":   b.BookDate.String(),
	})
	log.Info("Executing query to create a booking")

	query := `INSERT INTO bookings (category_id, book_date, booker_first_name, booker_last_name, phone_number,
		number_of_guests, price, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, b.CategoryID, b.BookDate, b.BookerFirstName, b.BookerLastName,
		b.PhoneNumber, b.NumberOfGuests, b.Price, b.AdditionalInfo).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to execute create booking query")
		return mapWriteErr(err)
	}
	return nil
}

func (r *BookingRepository) UpdateBooking(ctx context.Context, b *model.Booking) error {
	log := logger.Log.WithField("booking_id", b.ID)
	log.Info("Executing query to update a booking")

	query := `UPDATE bookings SET category_id = $1, book_date = $2, booker_first_name = $3, booker_last_name = $4,
		phone_number = $5, number_of_guests = $6, price = $7, additional_info = $8, updated_at = NOW()
		WHERE id = $9 RETURNING updated_at`
	err := r.DB.QueryRowContext(ctx, query, b.CategoryID, b.BookDate, b.BookerFirstName, b.BookerLastName,
		b.PhoneNumber, b.NumberOfGuests, b.Price, b.AdditionalInfo, b.ID).Scan(&b.UpdatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to execute update booking query")
		return mapWriteErr(err)
	}
	return nil
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, id int64) error {
	logger.Log.WithField("booking_id", id).Info("Executing query to delete a booking")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *BookingRepository) ListCalendar(ctx context.Context) ([]model.CalendarEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, book_date FROM bookings ORDER BY book_date`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute calendar query")
		return nil, err
	}
	defer rows.Close()

	entries := []model.CalendarEntry{}
	for rows.Next() {
		var e model.CalendarEntry
		if err := rows.Scan(&e.ID, &e.BookDate); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *BookingRepository) ListCalendarInfo(ctx context.Context, day time.Time) ([]model.CalendarInfo, error) {
	query := `SELECT b.id, b.book_date, b.additional_info, c.name, c.image
		FROM bookings b JOIN categories c ON c.id = b.category_id
		WHERE b.book_date = $1 ORDER BY b.id`
	rows, err := r.DB.QueryContext(ctx, query, model.DateOf(day))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute calendar info query")
		return nil, err
	}
	defer rows.Close()

	infos := []model.CalendarInfo{}
	for rows.Next() {
		var i model.CalendarInfo
		if err := rows.Scan(&i.ID, &i.BookDate, &i.AdditionalInfo, &i.Category.Name, &i.Category.Image); err != nil {
			return nil, err
		}
		infos = append(infos, i)
	}
	return infos, rows.Err()
}

// ListUpcoming returns bookings on or after from, soonest first.
func (r *BookingRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]model.UpcomingEvent, error) {
	query := `SELECT b.id, c.name, b.book_date, b.booker_first_name, b.booker_last_name, b.number_of_guests
		FROM bookings b JOIN categories c ON c.id = b.category_id
		WHERE b.book_date >= $1 ORDER BY b.book_date, b.id LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, model.DateOf(from), limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute upcoming events query")
		return nil, err
	}
	defer rows.Close()

	events := []model.UpcomingEvent{}
	for rows.Next() {
		var e model.UpcomingEvent
		if err := rows.Scan(&e.ID, &e.Category, &e.BookDate, &e.BookerFirstName, &e.BookerLastName, &e.NumberOfGuests); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountByCategory groups bookings by category name, largest group first.
func (r *BookingRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	query := `SELECT c.name, COUNT(b.id) FROM bookings b JOIN categories c ON c.id = b.category_id
		GROUP BY c.name ORDER BY COUNT(b.id) DESC, c.name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute bookings per category query")
		return nil, err
	}
	defer rows.Close()

	counts := []model.CategoryCount{}
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *BookingRepository) CountBookings(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}
