package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/immutablepost/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// Settings returns the stored options. Options that were never saved are blank.
func (r *Repository) Settings(ctx context.Context) (entity.Settings, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return entity.Settings{}, err
	}
	defer rows.Close()

	opts := make(map[string]string)

	for rows.Next() {
		var key, value string

		err = rows.Scan(&key, &value)
		if err != nil {
			return entity.Settings{}, err
		}

		opts[key] = value
	}

	if err = rows.Err(); err != nil {
		return entity.Settings{}, err
	}

	return entity.SettingsFromOptions(opts), nil
}

func (r *Repository) SaveSettings(ctx context.Context, s entity.Settings) error {
	sqlQuery :=
		`INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	now := time.Now()
	batch := &pgx.Batch{}

	for key, value := range s.Options() {
		batch.Queue(sqlQuery, key, value, now)
	}

	err := r.db.SendBatch(ctx, batch).Close()
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

func (r *Repository) CreateDeliveries(ctx context.Context, ds []entity.Delivery) error {
	if len(ds) == 0 {
		return nil
	}

	stmt := sq.Insert("deliveries").Columns(
		"id",
		"invoice_number",
		"recipient",
		"from_name",
		"from_email",
		"to_email",
		"subject",
		"body",
		"status",
		"attempts",
		"last_error",
		"created_at",
		"updated_at",
	).PlaceholderFormat(sq.Dollar)

	for _, d := range ds {
		stmt = stmt.Values(
			d.ID,
			d.InvoiceNumber,
			d.Notice.Recipient,
			d.Notice.From.Name,
			d.Notice.From.Email,
			d.Notice.To,
			d.Notice.Subject,
			d.Notice.Body,
			d.Status,
			d.Attempts,
			d.LastError,
			d.CreatedAt,
			d.UpdatedAt,
		)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert deliveries: %w", err)
	}

	return nil
}

func (r *Repository) FailedDeliveries(ctx context.Context, maxAttempts int) ([]entity.Delivery, error) {
	stmt := selectDeliveries().
		Where(sq.Eq{"status": entity.DeliveryStatusFailed}).
		Where(sq.Lt{"attempts": maxAttempts}).
		OrderBy("created_at")

	return r.deliveries(ctx, stmt)
}

func (r *Repository) DeliveriesByInvoice(ctx context.Context, number string) ([]entity.Delivery, error) {
	stmt := selectDeliveries().
		Where(sq.Eq{"invoice_number": number}).
		OrderBy("created_at", "id")

	return r.deliveries(ctx, stmt)
}

func (r *Repository) UpdateDelivery(ctx context.Context, d entity.Delivery) error {
	sqlQuery :=
		`UPDATE deliveries
		SET status = $1, attempts = $2, last_error = $3, updated_at = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, sqlQuery, d.Status, d.Attempts, d.LastError, d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func selectDeliveries() sq.SelectBuilder {
	return sq.Select(
		"id",
		"invoice_number",
		"recipient",
		"from_name",
		"from_email",
		"to_email",
		"subject",
		"body",
		"status",
		"attempts",
		"last_error",
		"created_at",
		"updated_at",
	).From("deliveries").PlaceholderFormat(sq.Dollar)
}

func (r *Repository) deliveries(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Delivery, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds []entity.Delivery

	for rows.Next() {
		var d entity.Delivery

		err = rows.Scan(
			&d.ID,
			&d.InvoiceNumber,
			&d.Notice.Recipient,
			&d.Notice.From.Name,
			&d.Notice.From.Email,
			&d.Notice.To,
			&d.Notice.Subject,
			&d.Notice.Body,
			&d.Status,
			&d.Attempts,
			&d.LastError,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}

	return ds, rows.Err()
}
