// Package pricing provides the pricing table of the tracking system: one
// Rule per delivery-speed tier carrying the base rate and per-kilogram rate
// used by the cost calculator. Rules are mutable by admins; changes apply
// only to future calculations.
package pricing
