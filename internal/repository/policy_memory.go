package repository

import (
	"context"

	"bloom/internal/domain"
)

type PolicyMemoryRepository struct {
	policies []domain.Policy
}

func NewPolicyRepository() *PolicyMemoryRepository {
	return &PolicyMemoryRepository{policies: seedPolicies()}
}

func (r *PolicyMemoryRepository) List(_ context.Context) ([]domain.Policy, error) {
	policies := make([]domain.Policy, len(r.policies))
	copy(policies, r.policies)
	return policies, nil
}

func (r *PolicyMemoryRepository) GetByID(_ context.Context, id string) (*domain.Policy, error) {
	for _, policy := range r.policies {
		if policy.ID == id {
			p := policy
			return &p, nil
		}
	}
	return nil, domain.ErrPolicyNotFound
}

func seedPolicies() []domain.Policy {
	insured := domain.Insured{
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: "1985-06-15",
		Address: domain.Address{
			Street:  "123 Main Street",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
		},
		Phone: "(555) 123-4567",
		Email: "john.smith@email.com",
	}

	return []domain.Policy{
		{
			ID:               "1",
			PolicyNumber:     "LIFE-2024-001234",
			Type:             domain.PolicyTypeLife,
			ProductName:      "Universal Life Insurance",
			Status:           domain.PolicyStatusActive,
			EffectiveDate:    "2024-01-15",
			Premium:          83.33,
			CoverageAmount:   200000,
			PaymentFrequency: domain.PaymentFrequencyMonthly,
			NextPaymentDate:  "2026-03-01",
			Insured:          insured,
			Beneficiaries: []domain.Beneficiary{
				{ID: "b1", Name: "Jane Smith", Relationship: "Spouse", Percentage: 60, IsPrimary: true},
				{ID: "b2", Name: "Emily Smith", Relationship: "Daughter", Percentage: 40, IsPrimary: true},
			},
		},
		{
			ID:               "2",
			PolicyNumber:     "ANN-2023-005678",
			Type:             domain.PolicyTypeAnnuity,
			ProductName:      "Fixed Index Annuity",
			Status:           domain.PolicyStatusActive,
			EffectiveDate:    "2023-06-01",
			Premium:          850.00,
			CoverageAmount:   250000,
			PaymentFrequency: domain.PaymentFrequencyQuarterly,
			NextPaymentDate:  "2026-03-15",
			Insured:          insured,
		},
		{
			ID:               "3",
			PolicyNumber:     "HOME-2025-009012",
			Type:             domain.PolicyTypeProperty,
			ProductName:      "Homeowners Premier",
			Status:           domain.PolicyStatusActive,
			EffectiveDate:    "2025-02-01",
			ExpirationDate:   "2026-02-01",
			Premium:          145.00,
			CoverageAmount:   450000,
			PaymentFrequency: domain.PaymentFrequencyMonthly,
			NextPaymentDate:  "2026-03-01",
			Insured:          insured,
			Coverages: []domain.Coverage{
				{ID: "c1", Type: "Dwelling", Limit: 450000, Deductible: 2500, Description: "Protection for your home structure"},
				{ID: "c2", Type: "Personal Property", Limit: 225000, Deductible: 1000, Description: "Coverage for belongings inside your home"},
				{ID: "c3", Type: "Liability", Limit: 500000, Deductible: 0, Description: "Protection against lawsuits and claims"},
			},
		},
		{
			ID:               "4",
			PolicyNumber:     "AUTO-2025-003456",
			Type:             domain.PolicyTypeCasualty,
			ProductName:      "Auto Complete Coverage",
			Status:           domain.PolicyStatusActive,
			EffectiveDate:    "2025-01-10",
			ExpirationDate:   "2026-01-10",
			Premium:          165.75,
			CoverageAmount:   300000,
			PaymentFrequency: domain.PaymentFrequencyMonthly,
			NextPaymentDate:  "2026-03-01",
			Insured:          insured,
			Coverages: []domain.Coverage{
				{ID: "c4", Type: "Bodily Injury", Limit: 300000, Deductible: 0, Description: "Per person/Per accident coverage"},
				{ID: "c5", Type: "Property Damage", Limit: 100000, Deductible: 0, Description: "Damage to others property"},
				{ID: "c6", Type: "Collision", Limit: 50000, Deductible: 500, Description: "Vehicle damage from collision"},
				{ID: "c7", Type: "Comprehensive", Limit: 50000, Deductible: 250, Description: "Vehicle damage from non-collision events"},
			},
		},
	}
}
