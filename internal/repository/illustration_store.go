package repository

import (
	"context"
	"fmt"
	"sync"

	"bloom/internal/domain"
	"bloom/pkg/store"
)

const illustrationRequestsCollection = "illustration_requests"

type IllustrationStore struct {
	documents *store.DocumentStore

	illustrations []domain.Illustration

	mu       sync.RWMutex
	requests []domain.IllustrationRequest
}

func NewIllustrationStore(documents *store.DocumentStore) (*IllustrationStore, error) {
	var requests []domain.IllustrationRequest
	if err := documents.Read(illustrationRequestsCollection, &requests); err != nil {
		return nil, fmt.Errorf("ошибка загрузки запросов на иллюстрации: %w", err)
	}

	return &IllustrationStore{
		documents:     documents,
		illustrations: seedIllustrations(),
		requests:      requests,
	}, nil
}

func (s *IllustrationStore) GetByID(_ context.Context, id string) (*domain.Illustration, error) {
	for _, illustration := range s.illustrations {
		if illustration.ID == id {
			ill := illustration
			return &ill, nil
		}
	}
	return nil, domain.ErrIllustrationNotFound
}

func (s *IllustrationStore) ListByPolicy(_ context.Context, policyID string) ([]domain.Illustration, error) {
	result := make([]domain.Illustration, 0)
	for _, illustration := range s.illustrations {
		if illustration.PolicyID == policyID {
			result = append(result, illustration)
		}
	}
	return result, nil
}

func (s *IllustrationStore) CreateRequest(_ context.Context, request domain.IllustrationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, request)

	if err := s.documents.Write(illustrationRequestsCollection, s.requests); err != nil {
		return fmt.Errorf("ошибка сохранения запросов на иллюстрации: %w", err)
	}
	return nil
}

func (s *IllustrationStore) ListRequests(_ context.Context, policyID *string) ([]domain.IllustrationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]domain.IllustrationRequest, 0, len(s.requests))
	for _, request := range s.requests {
		if policyID != nil && request.PolicyID != *policyID {
			continue
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func seedIllustrations() []domain.Illustration {
	return []domain.Illustration{
		{
			ID:               "ill-001",
			PolicyID:         "1",
			PolicyNumber:     "LIFE-2024-001234",
			GeneratedDate:    "2026-02-03",
			IllustrationType: domain.IllustrationTypeInforce,
			PolicyDetails: domain.IllustrationPolicyDetails{
				InsuredName:  "John Charles Smith",
				Age:          30,
				Gender:       "Male",
				IssueDate:    "2024-01-15",
				ProductName:  "Universal Life Insurance",
				FaceAmount:   200000,
				ModalPremium: 1000,
				PremiumMode:  "Annual",
			},
			CurrentValues: domain.IllustrationCurrentValues{
				PolicyYear:         2,
				CashSurrenderValue: 1850,
				DeathBenefit:       200000,
				LoanBalance:        0,
			},
			Assumptions: domain.IllustrationAssumptions{
				GuaranteedInterestRate:  3.0,
				IllustratedInterestRate: 5.5,
				CurrentCostOfInsurance:  true,
			},
			Projections: []domain.IllustrationProjection{
				{Year: 1, Age: 30, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 750, Illustrated: 950}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 200000}},
				{Year: 2, Age: 31, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 1600, Illustrated: 1850}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 200000}},
				{Year: 5, Age: 34, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 4250, Illustrated: 5120}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 205000}},
				{Year: 10, Age: 39, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 9100, Illustrated: 12350}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 215000}},
				{Year: 15, Age: 44, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 14500, Illustrated: 21800}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 228000}},
				{Year: 20, Age: 49, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 20400, Illustrated: 34200}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 245000}},
				{Year: 25, Age: 54, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 27100, Illustrated: 50400}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 265000}},
				{Year: 30, Age: 59, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 34500, Illustrated: 71500}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 289000}},
				{Year: 35, Age: 64, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 42800, Illustrated: 98200}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 318000}},
				{Year: 40, Age: 69, Premium: 1000, CashSurrenderValue: domain.ProjectedValues{Guaranteed: 52100, Illustrated: 131400}, DeathBenefit: domain.ProjectedValues{Guaranteed: 200000, Illustrated: 352000}},
			},
			Disclosures: []string{
				"This illustration is based on current cost of insurance rates and illustrated interest rates, which are not guaranteed.",
				"Actual policy performance may be more or less favorable than shown.",
				"The guaranteed values assume the minimum guaranteed interest rate of 3.0% as specified in the policy.",
				"Illustrated values assume a non-guaranteed interest rate of 5.5% which may vary.",
				"Continuation of coverage beyond shown years assumes premiums are paid as illustrated.",
				"Policy loans and withdrawals will reduce cash values and death benefits.",
				"This illustration does not constitute an offer or contract. Refer to your policy for actual terms and conditions.",
			},
		},
	}
}
