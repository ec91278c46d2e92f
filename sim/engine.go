package sim

import "fmt"

// DayRecord captures one simulated day, after that day's order arrival and
// sales have been applied.
type DayRecord struct {
	Day          int // 0-based day index
	InventoryEnd int // on-hand units at end of day; never negative
	Demand       int // the day's demand draw
	Sales        int // min(on-hand before sales, demand)
	Shortfall    int // unmet demand, lost rather than backordered
}

// SimulationRun is one complete (s, Q) trajectory. Stateless and immutable
// once produced; owned by the caller that requested it.
type SimulationRun struct {
	Scenario     string // sweep label ("Demand=12"); empty for standalone runs
	Policy       Policy
	Records      []DayRecord // exactly Policy.Horizon entries, day order
	OrdersPlaced int         // count of actual order-placement events
}

// Simulate runs one (s, Q) trajectory over p.Horizon days, drawing daily
// demand from src. Per day: the demand is drawn, a due order arrives,
// sales and shortfall are settled, and the reorder trigger is checked.
//
// At most one order is in flight at a time. The pending-arrival marker is
// never cleared once set; the trigger guard arrivalDay < t is what keeps a
// second order from being placed while one is pending. On the day an order
// arrives the guard still sees arrivalDay == t, so even if inventory sits
// at or below the reorder point after that arrival, the next order can be
// placed no earlier than the following day.
//
// The run is all-or-nothing: a validation failure or an exhausted demand
// source returns a nil run and no partial records.
func Simulate(p Policy, src DemandSource) (*SimulationRun, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	run := &SimulationRun{Policy: p, Records: make([]DayRecord, 0, p.Horizon)}
	inventory := p.InitialInventory
	arrivalDay := -1 // no order pending

	for t := 0; t < p.Horizon; t++ {
		demand, err := src.Draw()
		if err != nil {
			return nil, fmt.Errorf("drawing demand for day %d: %w", t, err)
		}

		if t == arrivalDay {
			inventory += p.OrderQuantity
		}

		sales := min(inventory, demand)
		shortfall := demand - sales
		inventory -= sales

		if inventory <= p.ReorderPoint && arrivalDay < t {
			arrivalDay = t + p.LeadTime
			run.OrdersPlaced++
		}

		run.Records = append(run.Records, DayRecord{
			Day:          t,
			InventoryEnd: inventory,
			Demand:       demand,
			Sales:        sales,
			Shortfall:    shortfall,
		})
	}

	return run, nil
}
