package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a policy parameter outside its valid domain.
// Validation happens before the first simulated day; a run never fails
// with this error midway.
var ErrInvalidParameter = errors.New("invalid policy parameter")

// Policy holds the (s, Q) continuous-review parameters for one simulation run.
// Immutable per run: Simulate takes it by value and never writes back.
type Policy struct {
	Horizon          int     // number of days to simulate (> 0)
	InitialInventory int     // on-hand units at day 0 (>= 0)
	ReorderPoint     int     // s: reorder when on-hand falls to or below this level
	OrderQuantity    int     // Q: units added when an order arrives (> 0)
	LeadTime         int     // L: days between order placement and arrival (>= 1)
	MeanDemand       float64 // mean of the daily Poisson demand (>= 0)
}

// Validate checks every field against its domain. Each violation wraps
// ErrInvalidParameter so callers can match with errors.Is.
func (p Policy) Validate() error {
	if p.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidParameter, p.Horizon)
	}
	if p.InitialInventory < 0 {
		return fmt.Errorf("%w: initial inventory must be non-negative, got %d", ErrInvalidParameter, p.InitialInventory)
	}
	if p.OrderQuantity <= 0 {
		return fmt.Errorf("%w: order quantity must be positive, got %d", ErrInvalidParameter, p.OrderQuantity)
	}
	if p.LeadTime < 1 {
		return fmt.Errorf("%w: lead time must be at least 1 day, got %d", ErrInvalidParameter, p.LeadTime)
	}
	if p.MeanDemand < 0 {
		return fmt.Errorf("%w: mean demand must be non-negative, got %f", ErrInvalidParameter, p.MeanDemand)
	}
	return nil
}
