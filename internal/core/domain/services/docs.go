// Package services holds domain logic that does not belong to a single
// aggregate:
//   - OrderWorkflow decides whether a caller may move an order to a requested
//     status, combining the status graph with the caller's roles.
//   - OrderPlanner creates orders, checking the assigned carrier's documents.
package services
