package services_test

import (
	"context"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock RatingRepository ---
type MockRatingRepository struct {
	mock.Mock
}

var _ portsrepo.RatingRepositoryFacade = (*MockRatingRepository)(nil)

func (m *MockRatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) FindByRank(ctx context.Context, rank int) (*domain.Rating, error) {
	args := m.Called(ctx, rank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindMaxRank(ctx context.Context) (*int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockRatingRepository) FindByAgencyNotNull(ctx context.Context, agency domain.Agency) ([]domain.Rating, error) {
	args := m.Called(ctx, agency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByRankRange(ctx context.Context, minRank, maxRank int) ([]domain.Rating, error) {
	args := m.Called(ctx, minRank, maxRank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByRankGreaterOrEqual(ctx context.Context, minRank int) ([]domain.Rating, error) {
	args := m.Called(ctx, minRank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) Save(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
