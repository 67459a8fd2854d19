// Package order provides the forwarding order aggregate and its status state
// machine.
//
// Status graph:
//
//	ASSIGNED_TO_COMPANY_TRUCK ─┐
//	                           ├─> ON_LOADING ─> ON_THE_WAY_TO_UNLOADING ─> ON_UNLOADING ─> UNLOADED
//	ASSIGNED_TO_CARRIER ───────┘
//
//	any non-terminal status ─> CANCELLED
//
// The initial status is chosen at creation time from whether a carrier is
// assigned; it is not reached by a transition. UNLOADED and CANCELLED are
// terminal. Who may trigger which transition is decided by the OrderWorkflow
// domain service, not here.
package order
