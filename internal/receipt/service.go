package receipt

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tally/internal/receipt/metrics"
	dErrors "tally/pkg/domain-errors"
)

// Service ties the rule engines to the receipt store. Process validates and
// stores a candidate receipt; Points scores a stored receipt on demand.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

func NewService(store Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// Process validates a candidate receipt and stores it under a generated
// identifier. The returned error is a *ValidationError for client input
// problems and a coded internal error for anything else.
func (s *Service) Process(ctx context.Context, doc Document) (string, error) {
	start := time.Now()

	rec, err := Validate(doc)
	if err != nil {
		if kind, ok := FailureKindOf(err); ok {
			s.metrics.IncrementValidationFailure(string(kind))
		}
		return "", err
	}

	id := uuid.NewString()
	if err := s.store.Put(ctx, id, rec); err != nil {
		return "", dErrors.New(dErrors.CodeInternal, "failed to store receipt")
	}

	s.metrics.IncrementReceiptsProcessed()
	s.metrics.ObserveProcessLatency(time.Since(start))
	return id, nil
}

// Points returns the score for a stored receipt.
func (s *Service) Points(ctx context.Context, id string) (int, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, dErrors.New(dErrors.CodeNotFound, "receipt not found")
		}
		return 0, dErrors.New(dErrors.CodeInternal, "failed to load receipt")
	}

	points := Points(rec)
	s.metrics.ObservePoints(points)
	return points, nil
}
