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

type PgxFECAnalysisRepository struct {
	BaseRepository
}

// newPgxFECAnalysisRepository creates a new repository for stored analyses.
func newPgxFECAnalysisRepository(pool *pgxpool.Pool) portsrepo.FECAnalysisRepositoryWithTx {
	return &PgxFECAnalysisRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FECAnalysisRepositoryWithTx = (*PgxFECAnalysisRepository)(nil)

// SaveAnalysis inserts a new analysis.
func (r *PgxFECAnalysisRepository) SaveAnalysis(ctx context.Context, analysis domain.FECAnalysis) error {
	m := mapping.ToModelFECAnalysis(analysis)
	query := `
		INSERT INTO fec_analyses (analysis_id, filename, upload_date, user_id, period, results)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AnalysisID,
		m.Filename,
		m.UploadDate,
		m.UserID,
		m.Period,
		m.Results,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("analysis ID " + m.AnalysisID + " already exists")
		}
		return fmt.Errorf("failed to save analysis %s: %w", m.AnalysisID, err)
	}
	return nil
}

// FindAnalysisByID retrieves one analysis owned by userID.
func (r *PgxFECAnalysisRepository) FindAnalysisByID(ctx context.Context, analysisID, userID string) (*domain.FECAnalysis, error) {
	query := `
		SELECT analysis_id, filename, upload_date, user_id, period, results
		FROM fec_analyses
		WHERE analysis_id = $1 AND user_id = $2;
	`
	var m models.FECAnalysis
	err := r.Pool.QueryRow(ctx, query, analysisID, userID).Scan(
		&m.AnalysisID,
		&m.Filename,
		&m.UploadDate,
		&m.UserID,
		&m.Period,
		&m.Results,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find analysis %s: %w", analysisID, err)
	}

	d := mapping.ToDomainFECAnalysis(m)
	return &d, nil
}

// ListAnalysesByUser retrieves a user's analyses, newest first.
func (r *PgxFECAnalysisRepository) ListAnalysesByUser(ctx context.Context, userID string) ([]domain.FECAnalysis, error) {
	query := `
		SELECT analysis_id, filename, upload_date, user_id, period, results
		FROM fec_analyses
		WHERE user_id = $1
		ORDER BY upload_date DESC, analysis_id;
	`
	return r.queryAnalyses(ctx, query, userID)
}

// ListRecentAnalyses retrieves a user's latest analyses without their results.
func (r *PgxFECAnalysisRepository) ListRecentAnalyses(ctx context.Context, userID string, limit int) ([]domain.FECAnalysis, error) {
	query := `
		SELECT analysis_id, filename, upload_date, user_id, period, ''
		FROM fec_analyses
		WHERE user_id = $1
		ORDER BY upload_date DESC, analysis_id
		LIMIT $2;
	`
	return r.queryAnalyses(ctx, query, userID, limit)
}

func (r *PgxFECAnalysisRepository) queryAnalyses(ctx context.Context, query string, args ...any) ([]domain.FECAnalysis, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	modelAnalyses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FECAnalysis, error) {
		var m models.FECAnalysis
		err := row.Scan(
			&m.AnalysisID,
			&m.Filename,
			&m.UploadDate,
			&m.UserID,
			&m.Period,
			&m.Results,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan analyses: %w", err)
	}

	return mapping.ToDomainFECAnalysisSlice(modelAnalyses), nil
}

// CountAnalysesByUser counts the analyses owned by userID.
func (r *PgxFECAnalysisRepository) CountAnalysesByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fec_analyses WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// DeleteAnalysis removes an analysis owned by userID.
func (r *PgxFECAnalysisRepository) DeleteAnalysis(ctx context.Context, analysisID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fec_analyses WHERE analysis_id = $1 AND user_id = $2;`, analysisID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", analysisID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
