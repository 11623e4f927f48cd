package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/models"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/repository"
)

type RepoAPI interface {
	ListVariables(ctx context.Context, filter repository.Filter, page repository.Page) ([]repository.Reading, error)
	Ping(ctx context.Context) error
}

type Service struct {
	repo RepoAPI
}

func New(repo RepoAPI) *Service {
	return &Service{repo: repo}
}

// ListAll returns every reading, most recent first.
func (s *Service) ListAll(ctx context.Context, page models.Page) ([]models.Reading, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}
	return s.list(ctx, repository.Filter{}, page)
}

// ListByModule returns readings whose module equals module exactly.
func (s *Service) ListByModule(ctx context.Context, module string, page models.Page) ([]models.Reading, error) {
	if module == "" {
		return nil, ErrEmptyModule
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}
	return s.list(ctx, repository.Filter{Module: module}, page)
}

// ListByDateRange returns readings with start <= timestamp <= end. An
// inverted range matches nothing and is answered without touching storage.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time, page models.Page) ([]models.Reading, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}
	if start.After(end) {
		return []models.Reading{}, nil
	}
	return s.list(ctx, repository.Filter{From: &start, To: &end}, page)
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return nil
}

// list expects page to be validated by the caller.
func (s *Service) list(ctx context.Context, filter repository.Filter, page models.Page) ([]models.Reading, error) {
	repoReadings, err := s.repo.ListVariables(ctx, filter, repository.Page{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	readings := make([]models.Reading, 0, len(repoReadings))
	for _, r := range repoReadings {
		readings = append(readings, models.Reading{
			ID:        r.ID,
			Module:    r.Module,
			Address:   r.Address,
			Symbol:    r.Symbol,
			DataType:  r.DataType,
			Comment:   r.Comment,
			Value:     r.Value,
			Timestamp: r.Timestamp,
			CreatedAt: r.CreatedAt,
		})
	}
	return readings, nil
}

func validatePage(page models.Page) error {
	if page.Limit < 0 {
		return ErrInvalidLimit
	}
	if page.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}
