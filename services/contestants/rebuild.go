package contestants

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bachelorette-db/services/contestants/db"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type SeasonRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

func (r SeasonRange) Validate() error {
	if r.First < 1 || r.Last < r.First {
		return fmt.Errorf("invalid season range %d..%d", r.First, r.Last)
	}
	return nil
}

type RebuildResult struct {
	RunId    string
	// contestants loaded per season
	Loaded   map[int]int
	// seasons written to the store, in load order
	Seasons  []int
	Duration time.Duration
}

// ResetStore drops and recreates the contestants table.
func (s Service) ResetStore(ctx context.Context) error {
	conn, err := s.store.OpenDB()
	if err != nil {
		return err
	}
	defer conn.Close()
	return db.Reset(ctx, conn)
}

// Rebuild resets the store and loads every season of the range in order,
// the first failing season stops the rebuild. seasons loaded before the
// failure stay in the store.
func (s Service) Rebuild(ctx context.Context, seasons SeasonRange) (RebuildResult, error) {
	result := RebuildResult{
		RunId:  uuid.NewString(),
		Loaded: map[int]int{},
	}
	start := time.Now()

	ctx, span := tracer.Start(ctx, "Rebuild", trace.WithAttributes(
		attribute.String("run_id", result.RunId),
		attribute.Int("first", seasons.First),
		attribute.Int("last", seasons.Last),
	))
	defer span.End()

	err := seasons.Validate()
	if err != nil {
		return result, err
	}

	logger := slog.Default().With("run_id", result.RunId)
	logger.InfoContext(ctx, "resetting store", "first", seasons.First, "last", seasons.Last)

	err = s.ResetStore(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to reset store")
		return result, fmt.Errorf("reset store: %w", err)
	}

	for season := seasons.First; season <= seasons.Last; season++ {
		logger.InfoContext(ctx, "loading season", "season", season)
		n, err := s.LoadSeason(ctx, season)
		if n > 0 || err == nil {
			result.Loaded[season] = n
			result.Seasons = append(result.Seasons, season)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "season failed")
			logger.ErrorContext(ctx, "season failed, aborting rebuild", "season", season, "err", err)
			result.Duration = time.Since(start)
			return result, err
		}
	}

	result.Duration = time.Since(start)
	logger.InfoContext(ctx, "rebuild finished", "seasons", len(result.Seasons), "seconds", result.Duration.Seconds())
	return result, nil
}
