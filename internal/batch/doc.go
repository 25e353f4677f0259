// Package batch runs the full generation pipeline over a list of
// orders.
//
// DESIGN
//
//   - Strictly sequential. Orders are processed one at a time in input
//     order; output collisions between orders are impossible and the
//     run log reads like the operator's list.
//   - Failure isolation. A failing order produces a Failed outcome
//     with its typed reason and the run continues. Only context
//     cancellation stops a run early.
//   - Per-order state walks Pending, Resolving, Rendering, Attached,
//     then Done or Failed. Transitions are logged; the outcome carries
//     the final state.
//   - Side channels are best effort: a run-log write failure or a
//     draft failure is logged and reported, never promoted to a batch
//     failure.
package batch
