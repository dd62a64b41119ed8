package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	"github.com/SscSPs/rating_registry/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GradeClassifierTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockRepo   *MockRatingRepository
	classifier *services.GradeClassifier
}

func (suite *GradeClassifierTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockRatingRepository)
	suite.classifier = services.NewGradeClassifier(suite.mockRepo)
}

func (suite *GradeClassifierTestSuite) TestFindAll_NilBecomesEmpty() {
	suite.mockRepo.On("FindAll", suite.ctx).Return(nil, nil).Once()

	ratings, err := suite.classifier.FindAll(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(ratings)
	suite.Empty(ratings)
}

func (suite *GradeClassifierTestSuite) TestFindAll_RepoError() {
	suite.mockRepo.On("FindAll", suite.ctx).Return(nil, assert.AnError).Once()

	ratings, err := suite.classifier.FindAll(suite.ctx)

	suite.Nil(ratings)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *GradeClassifierTestSuite) TestFindByAgency_CaseInsensitive() {
	expected := []domain.Rating{{ID: 1, FitchRating: stringPtr("AAA"), OrderNumber: intPtr(1)}}
	suite.mockRepo.On("FindByAgencyNotNull", suite.ctx, domain.AgencyFitch).Return(expected, nil).Once()

	ratings, err := suite.classifier.FindByAgency(suite.ctx, "fItCh")

	suite.Require().NoError(err)
	suite.Equal(expected, ratings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GradeClassifierTestSuite) TestFindByAgency_UnknownOrBlank() {
	for _, name := range []string{"", "   ", "DBRS", "S&P"} {
		ratings, err := suite.classifier.FindByAgency(suite.ctx, name)
		suite.Require().NoError(err)
		suite.NotNil(ratings)
		suite.Empty(ratings)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByAgencyNotNull", mock.Anything, mock.Anything)
}

func (suite *GradeClassifierTestSuite) TestFindInvestmentGrade_UsesOneToTwelve() {
	expected := []domain.Rating{{ID: 4, OrderNumber: intPtr(12)}}
	suite.mockRepo.On("FindByRankRange", suite.ctx, 1, 12).Return(expected, nil).Once()

	ratings, err := suite.classifier.FindInvestmentGrade(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, ratings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GradeClassifierTestSuite) TestFindSpeculativeGrade_FromThirteen() {
	expected := []domain.Rating{{ID: 5, OrderNumber: intPtr(13)}}
	suite.mockRepo.On("FindByRankGreaterOrEqual", suite.ctx, 13).Return(expected, nil).Once()

	ratings, err := suite.classifier.FindSpeculativeGrade(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, ratings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GradeClassifierTestSuite) TestFindByOrderRange() {
	expected := []domain.Rating{{ID: 2, OrderNumber: intPtr(5)}}
	suite.mockRepo.On("FindByRankRange", suite.ctx, 5, 10).Return(expected, nil).Once()

	ratings, err := suite.classifier.FindByOrderRange(suite.ctx, intPtr(5), intPtr(10))

	suite.Require().NoError(err)
	suite.Equal(expected, ratings)
}

func (suite *GradeClassifierTestSuite) TestFindByOrderRange_SingleRank() {
	suite.mockRepo.On("FindByRankRange", suite.ctx, 7, 7).Return([]domain.Rating{}, nil).Once()

	ratings, err := suite.classifier.FindByOrderRange(suite.ctx, intPtr(7), intPtr(7))

	suite.Require().NoError(err)
	suite.Empty(ratings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GradeClassifierTestSuite) TestFindByOrderRange_InvalidBounds() {
	cases := []struct{ minRank, maxRank *int }{
		{intPtr(10), intPtr(5)},
		{nil, intPtr(5)},
		{intPtr(1), nil},
		{nil, nil},
	}
	for _, c := range cases {
		ratings, err := suite.classifier.FindByOrderRange(suite.ctx, c.minRank, c.maxRank)
		suite.Require().NoError(err)
		suite.NotNil(ratings)
		suite.Empty(ratings)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByRankRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestGradeClassifier(t *testing.T) {
	suite.Run(t, new(GradeClassifierTestSuite))
}
