// Package sim implements a single-item inventory simulation under an (s, Q)
// continuous-review reorder policy: when on-hand inventory falls to or below
// the reorder point s, a fixed order Q is placed and arrives after a fixed
// lead time L. Unmet demand is lost, not backordered.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - policy.go: the (s, Q) parameters and their validation
//   - engine.go: the day loop (demand draw, arrival, sales, reorder trigger)
//   - sweep.go: the labeled multi-scenario comparison over demand means
//
// Demand is drawn from an injected DemandSource (demand.go) rather than
// ambient global randomness; rng.go derives per-subsystem deterministic
// streams from a single master seed so every run is reproducible.
//
// summary.go and assess.go sit on the output side: they reduce a finished
// run to scalar statistics and map those to rule-based policy conclusions.
package sim
