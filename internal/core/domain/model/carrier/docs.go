// Package carrier models external carriers: the contractors that move goods
// on forwarding orders that are not served by company trucks.
//
// A carrier may only take a new order while both its insurance policy and its
// transport licence are valid. Expiry dates are calendar days; a document is
// valid through the whole of its expiry day.
package carrier
