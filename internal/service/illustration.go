package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
)

// Упрощенные допущения расчета выплат по аннуитету: штраф за раннее
// снятие до 59.5 лет, федеральная ставка налога 22%, проценты по займу 5%
const (
	earlyWithdrawalAge     = 59.5
	earlyWithdrawalPenalty = 0.10
	estimatedTaxRate       = 0.22
	loanInterestRate       = 0.05

	defaultProjectionYears = 10
)

type IllustrationServiceImpl struct {
	repo       repository.IllustrationRepository
	policyRepo repository.PolicyRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewIllustrationService(
	repo repository.IllustrationRepository,
	policyRepo repository.PolicyRepository,
	logger *zap.Logger,
) *IllustrationServiceImpl {
	return &IllustrationServiceImpl{
		repo:       repo,
		policyRepo: policyRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *IllustrationServiceImpl) GetByID(ctx context.Context, id string) (*domain.Illustration, error) {
	illustration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("иллюстрация не найдена", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return illustration, nil
}

func (s *IllustrationServiceImpl) GetByPolicy(ctx context.Context, policyID string) ([]domain.Illustration, error) {
	illustrations, err := s.repo.ListByPolicy(ctx, policyID)
	if err != nil {
		s.logger.Error("ошибка получения иллюстраций полиса", zap.String("policyID", policyID), zap.Error(err))
		return nil, err
	}
	return illustrations, nil
}

func (s *IllustrationServiceImpl) CreateRequest(ctx context.Context, dto domain.CreateIllustrationRequestDTO) (*domain.IllustrationRequest, error) {
	policy, err := s.policyRepo.GetByID(ctx, dto.PolicyID)
	if err != nil {
		s.logger.Error("полис не найден при создании запроса иллюстрации", zap.String("policyID", dto.PolicyID), zap.Error(err))
		return nil, err
	}

	request := domain.IllustrationRequest{
		ID:                uuid.New().String(),
		PolicyID:          policy.ID,
		PolicyNumber:      policy.PolicyNumber,
		RequestDate:       s.now().UTC().Format(time.RFC3339),
		Status:            domain.IllustrationRequestStatusPending,
		RequestedBy:       dto.RequestedBy,
		RequestType:       dto.RequestType,
		ScenarioType:      dto.ScenarioType,
		ProjectionYears:   dto.ProjectionYears,
		AdditionalPremium: dto.AdditionalPremium,
		Notes:             dto.Notes,
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("ошибка сохранения запроса иллюстрации", zap.Error(err))
		return nil, err
	}

	return &request, nil
}

func (s *IllustrationServiceImpl) ListRequests(ctx context.Context, policyID *string) ([]domain.IllustrationRequest, error) {
	requests, err := s.repo.ListRequests(ctx, policyID)
	if err != nil {
		s.logger.Error("ошибка получения запросов иллюстраций", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *IllustrationServiceImpl) IllustratePayout(_ context.Context, input domain.PayoutIllustrationInput) (*domain.PayoutIllustration, error) {
	requestAmount := 0.0
	if input.Frequency == domain.PayoutFrequencyOneTime {
		requestAmount = input.Amount
	}

	surrenderCharge := 0.0
	if input.SurrenderChargeYearsRemaining > 0 {
		surrenderCharge = requestAmount * (input.SurrenderChargePercent / 100)
	}

	penalty := 0.0
	if input.Age < earlyWithdrawalAge && input.RequestType == domain.PayoutRequestTypeWithdrawal {
		penalty = requestAmount * earlyWithdrawalPenalty
	}

	incomeTax := 0.0
	if input.RequestType == domain.PayoutRequestTypeWithdrawal {
		incomeTax = requestAmount * estimatedTaxRate
	}

	netAmount := requestAmount - surrenderCharge - penalty - incomeTax

	// Заем не уменьшает стоимость счета при выдаче
	remainingValue := input.CurrentValue
	if input.RequestType == domain.PayoutRequestTypeWithdrawal {
		remainingValue = input.CurrentValue - requestAmount
	}

	loanInterest := 0.0
	if input.RequestType == domain.PayoutRequestTypeLoan {
		loanInterest = requestAmount * loanInterestRate
	}

	years := input.ProjectionYears
	if years <= 0 {
		years = defaultProjectionYears
	}

	systematicPerYear := 0.0
	if input.Frequency == domain.PayoutFrequencySystematic {
		switch input.SystematicFrequency {
		case domain.SystematicFrequencyMonthly:
			systematicPerYear = input.SystematicAmount * 12
		case domain.SystematicFrequencyQuarterly:
			systematicPerYear = input.SystematicAmount * 4
		default:
			systematicPerYear = input.SystematicAmount
		}
	}

	projections := make([]domain.PayoutProjection, 0, years)
	value := remainingValue

	for year := 1; year <= years; year++ {
		value = value * (1 + input.AnnualGrowthRate/100)
		value = value - systematicPerYear
		if value < 0 {
			value = 0
		}

		projections = append(projections, domain.PayoutProjection{
			Year:        year,
			Value:       value,
			Withdrawals: systematicPerYear,
		})
	}

	return &domain.PayoutIllustration{
		RequestAmount:          requestAmount,
		SurrenderCharge:        surrenderCharge,
		EarlyWithdrawalPenalty: penalty,
		EstimatedIncomeTax:     incomeTax,
		NetAmountReceived:      netAmount,
		RemainingValue:         remainingValue,
		LoanInterest:           loanInterest,
		Projections:            projections,
	}, nil
}

func (s *IllustrationServiceImpl) CalculateCoverageNeeds(_ context.Context, input domain.CoverageNeedsInput) (*domain.CoverageNeeds, error) {
	incomeReplacement := input.AnnualIncome * float64(input.IncomeYears)
	debtCoverage := input.MortgageBalance + input.OtherDebts
	educationFunding := float64(input.ChildrenCount) * input.EducationPerChild
	totalNeeds := incomeReplacement + debtCoverage + educationFunding + input.FinalExpenses + input.EmergencyFund

	recommended := totalNeeds - input.ExistingSavings
	if recommended < 0 {
		recommended = 0
	}

	coveragePercentage := 0.0
	if input.CurrentCoverage > 0 && recommended > 0 {
		coveragePercentage = (input.CurrentCoverage / recommended) * 100
	}

	return &domain.CoverageNeeds{
		IncomeReplacement:   incomeReplacement,
		DebtCoverage:        debtCoverage,
		EducationFunding:    educationFunding,
		FinalExpenses:       input.FinalExpenses,
		EmergencyFund:       input.EmergencyFund,
		TotalNeeds:          totalNeeds,
		RecommendedCoverage: recommended,
		CoveragePercentage:  coveragePercentage,
	}, nil
}
