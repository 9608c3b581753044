package domain

import "errors"

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrAdviserNotFound    = errors.New("adviser not found")
	ErrCommissionNotFound = errors.New("commission not found")
	ErrModifierNotFound   = errors.New("modifier not found")
	ErrAdvanceNotFound    = errors.New("advance not found")

	ErrMissingAdviser   = errors.New("sale has no assigned adviser")
	ErrMissingBaseValue = errors.New("sale has no monetary base value")

	ErrInvalidPercentage = errors.New("percentage outside 0-100 range")
	ErrNegativeAmount    = errors.New("amount must be positive")

	ErrCommissionExists = errors.New("commission already exists for sale")

	ErrHierarchyCycle     = errors.New("parent reassignment would create a cycle")
	ErrAdviserReferenced  = errors.New("adviser is referenced by commissions")
	ErrNotAuthorized      = errors.New("actor is not authorized for this operation")

	ErrRepaymentExceedsAdvance = errors.New("repayments exceed advance amount")
)
