package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/core/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func (suite *ReportingServiceTestSuite) TestTransactionSummary_AccumulatesTotals() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	groups := []domain.ReportGroup{
		{Key: "condo_fee", Count: 4, TotalAmount: decimal.NewFromInt(800)},
		{Key: "rent", Count: 12, TotalAmount: decimal.NewFromInt(18000)},
	}

	suite.mockReportingRepo.On("GetTransactionSummary", ctx, domain.DimensionCategory, from, to,
		mock.AnythingOfType("repositories.SummaryFilter")).Return(groups, nil).Once()

	report, err := suite.service.TransactionSummary(ctx, dto.SummaryParams{
		Dimension: "category",
		From:      from,
		To:        to,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.DimensionCategory, report.Dimension)
	suite.Equal(int64(16), report.TotalCount)
	suite.True(report.TotalAmount.Equal(decimal.NewFromInt(18800)))
	suite.Len(report.Groups, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTransactionSummary_EmptyResult() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockReportingRepo.On("GetTransactionSummary", ctx, domain.DimensionMonth, from, to,
		mock.AnythingOfType("repositories.SummaryFilter")).Return([]domain.ReportGroup{}, nil).Once()

	report, err := suite.service.TransactionSummary(ctx, dto.SummaryParams{
		Dimension: "month",
		From:      from,
		To:        to,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(0), report.TotalCount)
	suite.True(report.TotalAmount.IsZero())
	suite.Empty(report.Groups)
}

func (suite *ReportingServiceTestSuite) TestTransactionSummary_InvalidDimensionFails() {
	ctx := context.Background()

	_, err := suite.service.TransactionSummary(ctx, dto.SummaryParams{
		Dimension: "week",
		From:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "dimension")
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTransactionSummary",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestTransactionSummary_InvertedRangeFails() {
	ctx := context.Background()

	_, err := suite.service.TransactionSummary(ctx, dto.SummaryParams{
		Dimension: "category",
		From:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().Error(err)
	var rangeErr *apperrors.InvalidRangeError
	suite.Require().ErrorAs(err, &rangeErr)
}

func (suite *ReportingServiceTestSuite) TestCashflowSummary_NetFigures() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	totals := &portsrepo.CashflowTotals{
		ReceivablePaid:    decimal.NewFromInt(5000),
		ReceivablePending: decimal.NewFromInt(1200),
		PayablePaid:       decimal.NewFromInt(2000),
		PayablePending:    decimal.NewFromInt(300),
	}

	suite.mockReportingRepo.On("GetCashflowTotals", ctx, from, to).Return(totals, nil).Once()

	summary, err := suite.service.CashflowSummary(ctx, dto.CashflowParams{From: from, To: to})

	suite.Require().NoError(err)
	suite.True(summary.NetPaid.Equal(decimal.NewFromInt(3000)))
	suite.True(summary.NetForecast.Equal(decimal.NewFromInt(3900)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
