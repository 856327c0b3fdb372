package catalog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

var _ Repository = (*PostgresRepository)(nil)

// Querier is the part of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository reads the catalog tables filled by SeedFixtures.
type PostgresRepository struct {
	logger *zap.Logger
	db     Querier
}

func NewPostgresRepository(db Querier, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{logger: logger, db: db}
}

func (r *PostgresRepository) SportTypes(ctx context.Context) ([]models.SportType, error) {
	q := psql.Select("id", "name", "description", "image_url", "highlights").
		From("sport_types").
		OrderBy("position", "id")
	return selectAll(ctx, r, "sport_types", q, func(rows pgx.Rows) (models.SportType, error) {
		var s models.SportType
		err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.ImageURL, &s.Highlights)
		return s, err
	})
}

func (r *PostgresRepository) Trainers(ctx context.Context) ([]models.Trainer, error) {
	q := psql.Select("id", "name", "role", "description", "image_url", "qualifications").
		From("trainers").
		OrderBy("position", "id")
	return selectAll(ctx, r, "trainers", q, func(rows pgx.Rows) (models.Trainer, error) {
		var t models.Trainer
		err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Description, &t.ImageURL, &t.Qualifications)
		return t, err
	})
}

func (r *PostgresRepository) Courses(ctx context.Context) ([]models.Course, error) {
	q := psql.Select("id", "day", "time_slot", "title", "trainer_name").
		From("courses").
		OrderBy("position", "id")
	return selectAll(ctx, r, "courses", q, func(rows pgx.Rows) (models.Course, error) {
		var c models.Course
		err := rows.Scan(&c.ID, &c.Day, &c.Time, &c.Title, &c.TrainerName)
		return c, err
	})
}

func (r *PostgresRepository) PricePackages(ctx context.Context) ([]models.PricePackage, error) {
	q := psql.Select("id", "title", "monthly_cents", "description", "features", "highlight").
		From("price_packages").
		OrderBy("position", "id")
	return selectAll(ctx, r, "price_packages", q, func(rows pgx.Rows) (models.PricePackage, error) {
		var p models.PricePackage
		err := rows.Scan(&p.ID, &p.Title, &p.MonthlyCents, &p.Description, &p.Features, &p.Highlight)
		return p, err
	})
}

func (r *PostgresRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	q := psql.Select("id", "author", "quote", "rating", "class_name").
		From("testimonials").
		OrderBy("position", "id")
	return selectAll(ctx, r, "testimonials", q, func(rows pgx.Rows) (models.Testimonial, error) {
		var t models.Testimonial
		err := rows.Scan(&t.ID, &t.Author, &t.Quote, &t.Rating, &t.ClassName)
		return t, err
	})
}

func selectAll[T any](ctx context.Context, r *PostgresRepository, table string, q sq.SelectBuilder, scan func(pgx.Rows) (T, error)) ([]T, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "Select", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", table),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "selectAll"), zap.String("table", table))

	query, args, err := q.ToSql()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build query")
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		l.Error("Failed to query catalog table", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			l.Error("Failed to scan catalog row", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan failed")
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows error")
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	span.SetAttributes(attribute.Int("db.rows", len(out)))
	span.SetStatus(codes.Ok, "")
	l.Debug("Loaded catalog table", zap.Int("rows", len(out)))
	return out, nil
}
