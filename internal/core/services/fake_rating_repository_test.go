package services_test

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
)

// fakeRatingRepository is an in-memory store with the same unique-rank
// constraint as the ratings table.
type fakeRatingRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Rating
}

var _ portsrepo.RatingRepositoryFacade = (*fakeRatingRepository)(nil)

func newFakeRatingRepository() *fakeRatingRepository {
	return &fakeRatingRepository{rows: map[int64]domain.Rating{}}
}

func (f *fakeRatingRepository) sorted(keep func(domain.Rating) bool) []domain.Rating {
	out := []domain.Rating{}
	for _, r := range f.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].OrderNumber < *out[j].OrderNumber })
	return out
}

func (f *fakeRatingRepository) FindAll(_ context.Context) ([]domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(domain.Rating) bool { return true }), nil
}

func (f *fakeRatingRepository) FindByID(_ context.Context, id int64) (*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRatingRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeRatingRepository) FindByRank(_ context.Context, rank int) (*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if *r.OrderNumber == rank {
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRatingRepository) FindMaxRank(_ context.Context) (*int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var maxRank *int
	for _, r := range f.rows {
		if maxRank == nil || *r.OrderNumber > *maxRank {
			rank := *r.OrderNumber
			maxRank = &rank
		}
	}
	return maxRank, nil
}

func (f *fakeRatingRepository) FindByAgencyNotNull(_ context.Context, agency domain.Agency) ([]domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(r domain.Rating) bool { return r.HasNotation(agency) }), nil
}

func (f *fakeRatingRepository) FindByRankRange(_ context.Context, minRank, maxRank int) ([]domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(r domain.Rating) bool {
		return *r.OrderNumber >= minRank && *r.OrderNumber <= maxRank
	}), nil
}

func (f *fakeRatingRepository) FindByRankGreaterOrEqual(_ context.Context, minRank int) ([]domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(r domain.Rating) bool { return *r.OrderNumber >= minRank }), nil
}

func (f *fakeRatingRepository) Save(_ context.Context, rating domain.Rating) (*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.rows {
		if id != rating.ID && *r.OrderNumber == *rating.OrderNumber {
			return nil, apperrors.NewOrderError(apperrors.ReasonDuplicateOrder, *rating.OrderNumber)
		}
	}
	if rating.IsNew() {
		f.nextID++
		rating.ID = f.nextID
	} else if _, ok := f.rows[rating.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	f.rows[rating.ID] = rating
	return &rating, nil
}

func (f *fakeRatingRepository) DeleteByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}
