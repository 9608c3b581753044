package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdviserRole string

const (
	RoleAdviser AdviserRole = "ADVISER"
	RoleManager AdviserRole = "MANAGER"
	RoleAdmin   AdviserRole = "ADMIN"
)

// Adviser is a node in the self-referencing management hierarchy.
// ParentID is nil for top-level advisers; the parent graph is a forest.
type Adviser struct {
	ID            string
	DisplayName   string
	FeePercentage decimal.Decimal
	ParentID      *string
	Active        bool
	Role          AdviserRole
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *Adviser) IsManager() bool {
	return a.Role == RoleManager || a.Role == RoleAdmin
}

type AdviserRepository interface {
	CreateAdviser(adviser *Adviser) error
	GetAdviserByID(adviserID string) (*Adviser, error)
	UpdateAdviser(adviser *Adviser) error
	UpdateParent(adviserID string, parentID *string) error
	GetChildren(adviserID string) ([]*Adviser, error)
	HasCommissions(adviserID string) (bool, error)
	DeleteAdviser(adviserID string) error
}
