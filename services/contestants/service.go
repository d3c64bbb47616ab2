package contestants

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"bachelorette-db/lib/scrapers/wikipedia"
	"bachelorette-db/services/contestants/db"
	"bachelorette-db/services/contestants/roster"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("services/contestants")
var meter = otel.Meter("services/contestants")
var contestantsLoaded, _ = meter.Int64Counter("contestants.loaded")
var seasonsLoaded, _ = meter.Int64Counter("seasons.loaded")

// TableSource locates the roster table of a season.
type TableSource interface {
	SeasonTable(ctx context.Context, season int) (*goquery.Selection, error)
}

// DBOpener opens the store, a connection is opened for every season and
// closed once the season is written.
type DBOpener interface {
	OpenDB() (*sql.DB, error)
}

type Options struct {
	Source     TableSource
	Store      DBOpener
	Normalizer roster.Normalizer
	// how long to wait after loading each season
	Pause time.Duration
}

type Service struct {
	source     TableSource
	store      DBOpener
	normalizer roster.Normalizer
	pause      time.Duration
}

func NewService(opts Options) Service {
	normalizer := opts.Normalizer
	if normalizer.Formats == nil {
		normalizer = roster.NewNormalizer()
	}
	return Service{
		source:     opts.Source,
		store:      opts.Store,
		normalizer: normalizer,
		pause:      opts.Pause,
	}
}

// Scrape fetches and normalizes a season without writing anything.
func (s Service) Scrape(ctx context.Context, season int) ([]roster.Record, error) {
	ctx, span := tracer.Start(ctx, "Scrape", trace.WithAttributes(
		attribute.Int("season", season),
	))
	defer span.End()

	table, err := s.source.SeasonTable(ctx, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to locate table")
		return nil, err
	}
	raw, err := wikipedia.ExtractRows(ctx, table)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract rows")
		return nil, fmt.Errorf("season %d: %w", season, err)
	}
	slog.DebugContext(ctx, "extracted rows", "season", season, "rows", len(raw))

	records, err := s.normalizer.Normalize(season, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to normalize rows")
		return nil, err
	}
	return records, nil
}

// LoadSeason scrapes a season and appends its records to the store, then
// waits for the configured pause.
func (s Service) LoadSeason(ctx context.Context, season int) (int, error) {
	records, err := s.Scrape(ctx, season)
	if err != nil {
		return 0, err
	}

	err = s.appendRecords(ctx, season, records)
	if err != nil {
		return 0, fmt.Errorf("append season %d: %w", season, err)
	}
	contestantsLoaded.Add(ctx, int64(len(records)), metric.WithAttributes(attribute.Int("season", season)))
	seasonsLoaded.Add(ctx, 1)
	slog.InfoContext(ctx, "loaded season", "season", season, "contestants", len(records))

	return len(records), sleep(ctx, s.pause)
}

func (s Service) appendRecords(ctx context.Context, season int, records []roster.Record) error {
	ctx, span := tracer.Start(ctx, "appendRecords", trace.WithAttributes(
		attribute.Int("season", season),
		attribute.Int("records", len(records)),
	))
	defer span.End()

	conn, err := s.store.OpenDB()
	if err != nil {
		span.SetStatus(codes.Error, "failed to open db")
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		span.SetStatus(codes.Error, "failed to begin tx")
		return err
	}
	defer tx.Rollback()
	txqry := db.New(tx)

	for _, r := range records {
		err = txqry.CreateContestant(ctx, db.CreateContestantParams{
			Season:     int64(r.Season),
			Name:       r.Name,
			Age:        r.Age,
			Occupation: r.Occupation,
			Hometown:   r.Hometown,
			Outcome:    r.Outcome,
			Place:      int64(r.Place),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to insert contestant")
			return err
		}
	}
	return tx.Commit()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
