package command

import (
	"context"
	"sort"

	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
)

// memoryRatingRepository keeps ratings in a map keyed by id.
type memoryRatingRepository struct {
	rows map[int64]domain.Rating
}

var _ portsrepo.RatingRepositoryFacade = (*memoryRatingRepository)(nil)

func newMemoryRatingRepository(seed ...domain.Rating) *memoryRatingRepository {
	repo := &memoryRatingRepository{rows: map[int64]domain.Rating{}}
	for _, r := range seed {
		repo.rows[r.ID] = r
	}
	return repo
}

func (m *memoryRatingRepository) filter(keep func(domain.Rating) bool) []domain.Rating {
	out := []domain.Rating{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].OrderNumber < *out[j].OrderNumber })
	return out
}

func (m *memoryRatingRepository) FindAll(context.Context) ([]domain.Rating, error) {
	return m.filter(func(domain.Rating) bool { return true }), nil
}

func (m *memoryRatingRepository) FindByID(_ context.Context, id int64) (*domain.Rating, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (m *memoryRatingRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memoryRatingRepository) FindByRank(_ context.Context, rank int) (*domain.Rating, error) {
	for _, r := range m.rows {
		if *r.OrderNumber == rank {
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memoryRatingRepository) FindMaxRank(context.Context) (*int, error) {
	var maxRank *int
	for _, r := range m.rows {
		if maxRank == nil || *r.OrderNumber > *maxRank {
			rank := *r.OrderNumber
			maxRank = &rank
		}
	}
	return maxRank, nil
}

func (m *memoryRatingRepository) FindByAgencyNotNull(_ context.Context, agency domain.Agency) ([]domain.Rating, error) {
	return m.filter(func(r domain.Rating) bool { return r.HasNotation(agency) }), nil
}

func (m *memoryRatingRepository) FindByRankRange(_ context.Context, minRank, maxRank int) ([]domain.Rating, error) {
	return m.filter(func(r domain.Rating) bool {
		return *r.OrderNumber >= minRank && *r.OrderNumber <= maxRank
	}), nil
}

func (m *memoryRatingRepository) FindByRankGreaterOrEqual(_ context.Context, minRank int) ([]domain.Rating, error) {
	return m.filter(func(r domain.Rating) bool { return *r.OrderNumber >= minRank }), nil
}

func (m *memoryRatingRepository) Save(_ context.Context, rating domain.Rating) (*domain.Rating, error) {
	if rating.IsNew() {
		rating.ID = int64(len(m.rows) + 1)
	} else if _, ok := m.rows[rating.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	m.rows[rating.ID] = rating
	return &rating, nil
}

func (m *memoryRatingRepository) DeleteByID(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}
