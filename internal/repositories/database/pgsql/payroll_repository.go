package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/arp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/arp_backend/internal/models"
	"github.com/SscSPs/arp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayrollRepository struct {
	BaseRepository
}

// newPgxPayrollRepository creates a new repository for payroll uploads.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryWithTx {
	return &PgxPayrollRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PayrollRepositoryWithTx = (*PgxPayrollRepository)(nil)

const insertPeriodTotalsQuery = `
	INSERT INTO payroll_period_totals (
		upload_id, period,
		production_gross, production_charges, production_supplements,
		admin_gross, admin_charges, admin_supplements
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// SaveUpload inserts an upload and its period totals in one transaction.
func (r *PgxPayrollRepository) SaveUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error {
	m, err := mapping.ToModelPayrollUpload(upload)
	if err != nil {
		return err
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payroll_uploads (upload_id, filename, records, total_records, uploaded_at, updated_at, uploaded_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		_, err := tx.Exec(ctx, query,
			m.UploadID,
			m.Filename,
			m.Records,
			m.TotalRecords,
			m.UploadedAt,
			m.UpdatedAt,
			m.UploadedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("payroll upload ID " + m.UploadID + " already exists")
			}
			return fmt.Errorf("failed to insert payroll upload %s: %w", m.UploadID, err)
		}
		return r.insertTotals(ctx, tx, totals)
	})
}

// ReplaceUpload overwrites the records of an existing upload and rebuilds its
// period totals in one transaction.
func (r *PgxPayrollRepository) ReplaceUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error {
	m, err := mapping.ToModelPayrollUpload(upload)
	if err != nil {
		return err
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE payroll_uploads
			SET records = $2, total_records = $3, updated_at = $4
			WHERE upload_id = $1;
		`
		tag, err := tx.Exec(ctx, query, m.UploadID, m.Records, m.TotalRecords, m.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to update payroll upload %s: %w", m.UploadID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM payroll_period_totals WHERE upload_id = $1;`, m.UploadID); err != nil {
			return fmt.Errorf("failed to clear period totals of %s: %w", m.UploadID, err)
		}
		return r.insertTotals(ctx, tx, totals)
	})
}

func (r *PgxPayrollRepository) insertTotals(ctx context.Context, tx pgx.Tx, totals []domain.PayrollPeriodTotals) error {
	if len(totals) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range totals {
		m := mapping.ToModelPayrollPeriodTotals(t)
		batch.Queue(insertPeriodTotalsQuery,
			m.UploadID,
			m.Period,
			m.ProductionGross,
			m.ProductionCharges,
			m.ProductionSupplements,
			m.AdminGross,
			m.AdminCharges,
			m.AdminSupplements,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range totals {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert period totals: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close period totals batch: %w", err)
	}
	return nil
}

// FindUploadByID retrieves an upload with its records.
func (r *PgxPayrollRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.PayrollUpload, error) {
	query := `
		SELECT upload_id, filename, records, total_records, uploaded_at, updated_at, uploaded_by
		FROM payroll_uploads
		WHERE upload_id = $1;
	`
	var m models.PayrollUpload
	err := r.Pool.QueryRow(ctx, query, uploadID).Scan(
		&m.UploadID,
		&m.Filename,
		&m.Records,
		&m.TotalRecords,
		&m.UploadedAt,
		&m.UpdatedAt,
		&m.UploadedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll upload %s: %w", uploadID, err)
	}

	d, err := mapping.ToDomainPayrollUpload(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListUploads retrieves every upload, newest first, without records.
func (r *PgxPayrollRepository) ListUploads(ctx context.Context) ([]domain.PayrollUpload, error) {
	query := `
		SELECT upload_id, filename, total_records, uploaded_at, updated_at, uploaded_by
		FROM payroll_uploads
		ORDER BY uploaded_at DESC, upload_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll uploads: %w", err)
	}
	defer rows.Close()

	modelUploads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PayrollUpload, error) {
		var m models.PayrollUpload
		err := row.Scan(
			&m.UploadID,
			&m.Filename,
			&m.TotalRecords,
			&m.UploadedAt,
			&m.UpdatedAt,
			&m.UploadedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll uploads: %w", err)
	}

	uploads := make([]domain.PayrollUpload, 0, len(modelUploads))
	for _, m := range modelUploads {
		d, err := mapping.ToDomainPayrollUpload(m)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, d)
	}
	return uploads, nil
}

// ListPeriodTotals retrieves the totals of period grouped by upload, oldest
// upload first.
func (r *PgxPayrollRepository) ListPeriodTotals(ctx context.Context, period string) ([][]domain.PayrollPeriodTotals, error) {
	query := `
		SELECT t.upload_id, t.period,
			t.production_gross, t.production_charges, t.production_supplements,
			t.admin_gross, t.admin_charges, t.admin_supplements
		FROM payroll_period_totals t
		JOIN payroll_uploads u ON u.upload_id = t.upload_id
		WHERE t.period = $1
		ORDER BY u.uploaded_at, u.upload_id;
	`
	rows, err := r.Pool.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query period totals for %s: %w", period, err)
	}
	defer rows.Close()

	modelTotals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PayrollPeriodTotals, error) {
		var m models.PayrollPeriodTotals
		err := row.Scan(
			&m.UploadID,
			&m.Period,
			&m.ProductionGross,
			&m.ProductionCharges,
			&m.ProductionSupplements,
			&m.AdminGross,
			&m.AdminCharges,
			&m.AdminSupplements,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan period totals for %s: %w", period, err)
	}

	var grouped [][]domain.PayrollPeriodTotals
	for _, m := range modelTotals {
		t := mapping.ToDomainPayrollPeriodTotals(m)
		last := len(grouped) - 1
		if last >= 0 && grouped[last][0].UploadID == t.UploadID {
			grouped[last] = append(grouped[last], t)
			continue
		}
		grouped = append(grouped, []domain.PayrollPeriodTotals{t})
	}
	return grouped, nil
}

// DeleteUpload removes an upload; its totals go with it.
func (r *PgxPayrollRepository) DeleteUpload(ctx context.Context, uploadID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payroll_uploads WHERE upload_id = $1;`, uploadID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll upload %s: %w", uploadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
