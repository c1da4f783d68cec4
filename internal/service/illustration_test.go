package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/pkg/store"
)

func newIllustrationService(t *testing.T) *IllustrationServiceImpl {
	t.Helper()

	documents, err := store.NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	illustrations, err := repository.NewIllustrationStore(documents)
	require.NoError(t, err)

	return NewIllustrationService(illustrations, repository.NewPolicyRepository(), zap.NewNop())
}

func TestIllustratePayoutWithdrawalDeductions(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:                   domain.PayoutRequestTypeWithdrawal,
		Amount:                        10000,
		Frequency:                     domain.PayoutFrequencyOneTime,
		CurrentValue:                  100000,
		Age:                           45,
		SurrenderChargePercent:        5,
		SurrenderChargeYearsRemaining: 2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 10000, result.RequestAmount, 0.001)
	assert.InDelta(t, 500, result.SurrenderCharge, 0.001)
	// До 59.5 лет удерживается штраф 10%
	assert.InDelta(t, 1000, result.EarlyWithdrawalPenalty, 0.001)
	assert.InDelta(t, 2200, result.EstimatedIncomeTax, 0.001)
	assert.InDelta(t, 6300, result.NetAmountReceived, 0.001)
	assert.InDelta(t, 90000, result.RemainingValue, 0.001)
	assert.Zero(t, result.LoanInterest)
}

func TestIllustratePayoutWithdrawalAfterRetirementAge(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:  domain.PayoutRequestTypeWithdrawal,
		Amount:       10000,
		Frequency:    domain.PayoutFrequencyOneTime,
		CurrentValue: 100000,
		Age:          65,
	})
	require.NoError(t, err)

	assert.Zero(t, result.EarlyWithdrawalPenalty)
	assert.InDelta(t, 2200, result.EstimatedIncomeTax, 0.001)
	assert.InDelta(t, 7800, result.NetAmountReceived, 0.001)
}

func TestIllustratePayoutLoanKeepsAccountValue(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:  domain.PayoutRequestTypeLoan,
		Amount:       10000,
		Frequency:    domain.PayoutFrequencyOneTime,
		CurrentValue: 100000,
		Age:          45,
	})
	require.NoError(t, err)

	// Заем не облагается налогом и штрафом и не уменьшает стоимость счета
	assert.Zero(t, result.EarlyWithdrawalPenalty)
	assert.Zero(t, result.EstimatedIncomeTax)
	assert.InDelta(t, 10000, result.NetAmountReceived, 0.001)
	assert.InDelta(t, 100000, result.RemainingValue, 0.001)
	assert.InDelta(t, 500, result.LoanInterest, 0.001)
}

func TestIllustratePayoutSystematicProjectionFloorsAtZero(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:         domain.PayoutRequestTypeWithdrawal,
		Frequency:           domain.PayoutFrequencySystematic,
		SystematicAmount:    1000,
		SystematicFrequency: domain.SystematicFrequencyMonthly,
		ProjectionYears:     3,
		CurrentValue:        20000,
		Age:                 65,
		AnnualGrowthRate:    0,
	})
	require.NoError(t, err)

	// Систематические выплаты не дают единовременной суммы
	assert.Zero(t, result.RequestAmount)
	assert.Zero(t, result.NetAmountReceived)

	require.Len(t, result.Projections, 3)
	assert.InDelta(t, 8000, result.Projections[0].Value, 0.001)
	assert.Zero(t, result.Projections[1].Value)
	assert.Zero(t, result.Projections[2].Value)
	for _, p := range result.Projections {
		assert.InDelta(t, 12000, p.Withdrawals, 0.001)
	}
}

func TestIllustratePayoutProjectionGrowth(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:     domain.PayoutRequestTypeWithdrawal,
		Frequency:       domain.PayoutFrequencyOneTime,
		Amount:          0,
		ProjectionYears: 2,
		CurrentValue:    10000,
		Age:             65,
		AnnualGrowthRate: 10,
	})
	require.NoError(t, err)

	require.Len(t, result.Projections, 2)
	assert.InDelta(t, 11000, result.Projections[0].Value, 0.001)
	assert.InDelta(t, 12100, result.Projections[1].Value, 0.001)
}

func TestIllustratePayoutDefaultProjectionYears(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.IllustratePayout(context.Background(), domain.PayoutIllustrationInput{
		RequestType:  domain.PayoutRequestTypeLoan,
		Frequency:    domain.PayoutFrequencyOneTime,
		Amount:       1000,
		CurrentValue: 50000,
		Age:          50,
	})
	require.NoError(t, err)
	assert.Len(t, result.Projections, 10)
}

func TestCalculateCoverageNeeds(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.CalculateCoverageNeeds(context.Background(), domain.CoverageNeedsInput{
		AnnualIncome:      100000,
		IncomeYears:       10,
		MortgageBalance:   200000,
		OtherDebts:        50000,
		ChildrenCount:     2,
		EducationPerChild: 100000,
		FinalExpenses:     15000,
		EmergencyFund:     25000,
		ExistingSavings:   50000,
		CurrentCoverage:   500000,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000000, result.IncomeReplacement, 0.001)
	assert.InDelta(t, 250000, result.DebtCoverage, 0.001)
	assert.InDelta(t, 200000, result.EducationFunding, 0.001)
	assert.InDelta(t, 1490000, result.TotalNeeds, 0.001)
	assert.InDelta(t, 1440000, result.RecommendedCoverage, 0.001)
	assert.InDelta(t, 34.722, result.CoveragePercentage, 0.01)
}

func TestCalculateCoverageNeedsFloorsAtZero(t *testing.T) {
	svc := newIllustrationService(t)

	result, err := svc.CalculateCoverageNeeds(context.Background(), domain.CoverageNeedsInput{
		FinalExpenses:   15000,
		ExistingSavings: 1000000,
	})
	require.NoError(t, err)

	assert.Zero(t, result.RecommendedCoverage)
	assert.Zero(t, result.CoveragePercentage)
}

func TestCreateIllustrationRequest(t *testing.T) {
	svc := newIllustrationService(t)

	request, err := svc.CreateRequest(context.Background(), domain.CreateIllustrationRequestDTO{
		PolicyID:    "1",
		RequestedBy: "John Smith",
		RequestType: domain.IllustrationTypeInforce,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, domain.IllustrationRequestStatusPending, request.Status)
	assert.NotEmpty(t, request.PolicyNumber)

	requests, err := svc.ListRequests(context.Background(), &request.PolicyID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, request.ID, requests[0].ID)
}

func TestCreateIllustrationRequestUnknownPolicy(t *testing.T) {
	svc := newIllustrationService(t)

	_, err := svc.CreateRequest(context.Background(), domain.CreateIllustrationRequestDTO{
		PolicyID:    "missing",
		RequestedBy: "John Smith",
		RequestType: domain.IllustrationTypeInforce,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyNotFound))
}
