package contact

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

var _ Store = (*PostgresStore)(nil)

// DB is the part of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore writes trial requests to the trial_requests table.
type PostgresStore struct {
	logger *zap.Logger
	db     DB
}

func NewPostgresStore(db DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{logger: logger, db: db}
}

func (s *PostgresStore) Save(ctx context.Context, req models.TrialRequest) error {
	ctx, span := otel.Tracer("TrialRequestStore").Start(ctx, "Save", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "trial_requests"),
	))
	defer span.End()

	query, args, err := psql.Insert("trial_requests").
		Columns("id", "first_name", "last_name", "email", "phone", "discipline", "message", "created_at").
		Values(req.ID, req.FirstName, req.LastName, req.Email, req.Phone, req.Discipline, req.Message, req.CreatedAt).
		ToSql()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.logger.Error("Failed to store trial request", zap.String("id", req.ID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("failed to insert trial request: %w", err)
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]models.TrialRequest, error) {
	ctx, span := otel.Tracer("TrialRequestStore").Start(ctx, "Recent", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "trial_requests"),
	))
	defer span.End()

	q := psql.Select("id", "first_name", "last_name", "email", "phone", "discipline", "message", "created_at").
		From("trial_requests").
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error("Failed to list trial requests", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query trial requests: %w", err)
	}
	defer rows.Close()

	var out []models.TrialRequest
	for rows.Next() {
		var r models.TrialRequest
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.Phone, &r.Discipline, &r.Message, &r.CreatedAt); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan trial request: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial requests: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From("trial_requests").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count: %w", err)
	}
	var n int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		s.logger.Error("Failed to count trial requests", zap.Error(err))
		return 0, fmt.Errorf("failed to count trial requests: %w", err)
	}
	return n, nil
}
