package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

// maxHierarchyDepth bounds ancestor walks against corrupted parent data.
const maxHierarchyDepth = 64

type AdviserUsecase interface {
	CreateAdviser(displayName string, feePercentage decimal.Decimal, parentID *string, role domain.AdviserRole) (*domain.Adviser, error)
	GetAdviserByID(adviserID string) (*domain.Adviser, error)
	UpdateFeePercentage(adviserID string, feePercentage decimal.Decimal) error
	AncestorChain(adviserID string) ([]*domain.Adviser, error)
	Descendants(adviserID string) ([]string, error)
	ReassignParent(adviserID string, newParentID *string) error
	DeleteAdviser(adviserID string) error
}

type DefaultAdviserUsecase struct {
	AdviserRepo domain.AdviserRepository
}

func NewDefaultAdviserUsecase(adviserRepo domain.AdviserRepository) *DefaultAdviserUsecase {
	return &DefaultAdviserUsecase{AdviserRepo: adviserRepo}
}

func (uc *DefaultAdviserUsecase) CreateAdviser(displayName string, feePercentage decimal.Decimal, parentID *string, role domain.AdviserRole) (*domain.Adviser, error) {
	if !domain.ValidPercentage(feePercentage) {
		return nil, domain.ErrInvalidPercentage
	}
	if parentID != nil {
		if _, err := uc.AdviserRepo.GetAdviserByID(*parentID); err != nil {
			return nil, fmt.Errorf("resolving parent: %w", err)
		}
	}

	adviser := &domain.Adviser{
		ID:            uuid.New().String(),
		DisplayName:   displayName,
		FeePercentage: feePercentage,
		ParentID:      parentID,
		Active:        true,
		Role:          role,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uc.AdviserRepo.CreateAdviser(adviser); err != nil {
		return nil, err
	}
	return adviser, nil
}

func (uc *DefaultAdviserUsecase) GetAdviserByID(adviserID string) (*domain.Adviser, error) {
	return uc.AdviserRepo.GetAdviserByID(adviserID)
}

func (uc *DefaultAdviserUsecase) UpdateFeePercentage(adviserID string, feePercentage decimal.Decimal) error {
	if !domain.ValidPercentage(feePercentage) {
		return domain.ErrInvalidPercentage
	}
	adviser, err := uc.AdviserRepo.GetAdviserByID(adviserID)
	if err != nil {
		return err
	}
	adviser.FeePercentage = feePercentage
	adviser.UpdatedAt = time.Now()
	return uc.AdviserRepo.UpdateAdviser(adviser)
}

// AncestorChain returns the management chain above the adviser, nearest
// manager first. A missing ancestor mid-chain terminates the walk
// silently: that is a valid state, not an error.
func (uc *DefaultAdviserUsecase) AncestorChain(adviserID string) ([]*domain.Adviser, error) {
	current, err := uc.AdviserRepo.GetAdviserByID(adviserID)
	if err != nil {
		return nil, err
	}

	var chain []*domain.Adviser
	seen := map[string]bool{current.ID: true}
	for current.ParentID != nil && len(chain) < maxHierarchyDepth {
		parent, err := uc.AdviserRepo.GetAdviserByID(*current.ParentID)
		if err != nil {
			break
		}
		if seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		chain = append(chain, parent)
		current = parent
	}
	return chain, nil
}

// Descendants returns the IDs of every adviser in the subtree, the root
// included. Used for manager-level access scoping.
func (uc *DefaultAdviserUsecase) Descendants(adviserID string) ([]string, error) {
	ids := []string{adviserID}
	queue := []string{adviserID}
	seen := map[string]bool{adviserID: true}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		children, err := uc.AdviserRepo.GetChildren(next)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}
	return ids, nil
}

// ReassignParent moves an adviser under a new manager. The proposed
// parent's ancestor chain must not contain the adviser being moved,
// otherwise the forest would gain a cycle.
func (uc *DefaultAdviserUsecase) ReassignParent(adviserID string, newParentID *string) error {
	if _, err := uc.AdviserRepo.GetAdviserByID(adviserID); err != nil {
		return err
	}
	if newParentID != nil {
		if *newParentID == adviserID {
			return domain.ErrHierarchyCycle
		}
		parent, err := uc.AdviserRepo.GetAdviserByID(*newParentID)
		if err != nil {
			return fmt.Errorf("resolving new parent: %w", err)
		}
		ancestors, err := uc.AncestorChain(parent.ID)
		if err != nil {
			return err
		}
		for _, ancestor := range ancestors {
			if ancestor.ID == adviserID {
				return domain.ErrHierarchyCycle
			}
		}
	}
	return uc.AdviserRepo.UpdateParent(adviserID, newParentID)
}

// DeleteAdviser refuses to remove an adviser still referenced by
// commission rows.
func (uc *DefaultAdviserUsecase) DeleteAdviser(adviserID string) error {
	referenced, err := uc.AdviserRepo.HasCommissions(adviserID)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrAdviserReferenced
	}
	return uc.AdviserRepo.DeleteAdviser(adviserID)
}
