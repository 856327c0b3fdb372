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
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// TxBeginner is the part of *pgxpool.Pool the seeder needs.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SeedFixtures copies the embedded fixtures into the catalog tables so a
// Postgres backed catalog starts with the same content. Rows whose id already
// exists are left untouched, which keeps edits made in the database.
func SeedFixtures(ctx context.Context, db TxBeginner, logger *zap.Logger) error {
	fixtures, err := NewFixtureRepository()
	if err != nil {
		return err
	}
	return seed(ctx, db, fixtures.data, logger)
}

func seed(ctx context.Context, db TxBeginner, snap models.Snapshot, logger *zap.Logger) error {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "Seed")
	defer span.End()
	span.SetAttributes(semconv.DBSystemPostgreSQL, attribute.String("db.operation", "INSERT"))

	inserts := seedInserts(snap)

	tx, err := db.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "begin failed")
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	for _, ins := range inserts {
		query, args, err := ins.q.ToSql()
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to build %s seed: %w", ins.table, err)
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			_ = tx.Rollback(ctx)
			logger.Error("Failed to seed catalog table", zap.String("table", ins.table), zap.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "insert failed")
			return fmt.Errorf("failed to seed %s: %w", ins.table, err)
		}
		logger.Debug("Seeded catalog table",
			zap.String("table", ins.table),
			zap.Int("rows", ins.rows),
			zap.Int64("inserted", tag.RowsAffected()))
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		return fmt.Errorf("failed to commit catalog seed: %w", err)
	}
	span.SetStatus(codes.Ok, "")
	logger.Info("Catalog seed applied", zap.Int("tables", len(inserts)))
	return nil
}

type seedInsert struct {
	table string
	rows  int
	q     sq.InsertBuilder
}

// seedInserts builds one insert per non-empty collection. position follows
// the fixture order.
func seedInserts(snap models.Snapshot) []seedInsert {
	var out []seedInsert
	add := func(table string, rows int, q sq.InsertBuilder) {
		if rows > 0 {
			out = append(out, seedInsert{table: table, rows: rows, q: q.Suffix("ON CONFLICT (id) DO NOTHING")})
		}
	}

	q := psql.Insert("sport_types").Columns("id", "position", "name", "description", "image_url", "highlights")
	for i, s := range snap.SportTypes {
		q = q.Values(s.ID, i+1, s.Name, s.Description, s.ImageURL, nonNil(s.Highlights))
	}
	add("sport_types", len(snap.SportTypes), q)

	q = psql.Insert("trainers").Columns("id", "position", "name", "role", "description", "image_url", "qualifications")
	for i, t := range snap.Trainers {
		q = q.Values(t.ID, i+1, t.Name, t.Role, t.Description, t.ImageURL, nonNil(t.Qualifications))
	}
	add("trainers", len(snap.Trainers), q)

	q = psql.Insert("courses").Columns("id", "position", "day", "time_slot", "title", "trainer_name")
	for i, c := range snap.Courses {
		q = q.Values(c.ID, i+1, c.Day, c.Time, c.Title, c.TrainerName)
	}
	add("courses", len(snap.Courses), q)

	q = psql.Insert("price_packages").Columns("id", "position", "title", "monthly_cents", "description", "features", "highlight")
	for i, p := range snap.PricePackages {
		q = q.Values(p.ID, i+1, p.Title, p.MonthlyCents, p.Description, nonNil(p.Features), p.Highlight)
	}
	add("price_packages", len(snap.PricePackages), q)

	q = psql.Insert("testimonials").Columns("id", "position", "author", "quote", "rating", "class_name")
	for i, t := range snap.Testimonials {
		q = q.Values(t.ID, i+1, t.Author, t.Quote, t.Rating, t.ClassName)
	}
	add("testimonials", len(snap.Testimonials), q)

	return out
}

// nonNil keeps NOT NULL array columns satisfied.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
