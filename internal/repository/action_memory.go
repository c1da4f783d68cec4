package repository

import (
	"context"
	"sync"

	"bloom/internal/domain"
)

type ActionMemoryRepository struct {
	mu      sync.RWMutex
	actions []domain.CustomerAction
}

func NewActionRepository() *ActionMemoryRepository {
	return &ActionMemoryRepository{actions: seedActions()}
}

func (r *ActionMemoryRepository) List(_ context.Context) ([]domain.CustomerAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]domain.CustomerAction, len(r.actions))
	copy(actions, r.actions)
	return actions, nil
}

func (r *ActionMemoryRepository) GetByID(_ context.Context, id string) (*domain.CustomerAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, action := range r.actions {
		if action.ID == id {
			a := action
			return &a, nil
		}
	}
	return nil, domain.ErrActionNotFound
}

func (r *ActionMemoryRepository) Update(_ context.Context, action domain.CustomerAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.actions {
		if r.actions[i].ID == action.ID {
			r.actions[i] = action
			return nil
		}
	}
	return domain.ErrActionNotFound
}

func seedActions() []domain.CustomerAction {
	return []domain.CustomerAction{
		{
			ID:           "a1",
			PolicyID:     "1",
			PolicyNumber: "LIFE-2024-001234",
			Type:         "beneficiary_update",
			Title:        "Review Beneficiary Designation",
			Description:  "Annual beneficiary review is recommended to ensure your policy reflects your current wishes.",
			Status:       domain.ActionStatusPending,
			Priority:     domain.ActionPriorityMedium,
			CreatedDate:  "2026-02-01",
			DueDate:      "2026-03-01",
			Lifecycle: []domain.ActionLifecycle{
				{Status: domain.ActionStatusPending, Timestamp: "2026-02-01T10:30:00Z", Note: "Action created - Annual beneficiary review initiated"},
			},
		},
		{
			ID:           "a2",
			PolicyID:     "3",
			PolicyNumber: "HOME-2025-009012",
			Type:         "payment_required",
			Title:        "Payment Due Soon",
			Description:  "Your next premium payment of $145.00 is due on March 1, 2026.",
			Status:       domain.ActionStatusPending,
			Priority:     domain.ActionPriorityHigh,
			CreatedDate:  "2026-02-10",
			DueDate:      "2026-03-01",
			Lifecycle: []domain.ActionLifecycle{
				{Status: domain.ActionStatusPending, Timestamp: "2026-02-10T08:00:00Z", Note: "Payment reminder sent"},
			},
		},
		{
			ID:           "a3",
			PolicyID:     "2",
			PolicyNumber: "ANN-2023-005678",
			Type:         "coverage_change",
			Title:        "Coverage Modification Request",
			Description:  "Your request to adjust payment schedule is being processed.",
			Status:       domain.ActionStatusInReview,
			Priority:     domain.ActionPriorityMedium,
			CreatedDate:  "2026-01-28",
			Lifecycle: []domain.ActionLifecycle{
				{Status: domain.ActionStatusPending, Timestamp: "2026-01-28T14:22:00Z", Note: "Request submitted by customer"},
				{Status: domain.ActionStatusInReview, Timestamp: "2026-01-30T09:15:00Z", Note: "Under review by underwriting team", Performer: "Underwriting Dept"},
			},
		},
		{
			ID:           "a4",
			PolicyID:     "4",
			PolicyNumber: "AUTO-2025-003456",
			Type:         "document_required",
			Title:        "Vehicle Inspection Required",
			Description:  "Annual vehicle inspection documentation needed for policy renewal.",
			Status:       domain.ActionStatusPending,
			Priority:     domain.ActionPriorityMedium,
			CreatedDate:  "2026-02-03",
			DueDate:      "2026-03-10",
			Lifecycle: []domain.ActionLifecycle{
				{Status: domain.ActionStatusPending, Timestamp: "2026-02-03T11:45:00Z", Note: "Inspection requirement notification sent"},
			},
		},
	}
}
