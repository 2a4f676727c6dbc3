// Package billing provides the Bill aggregate and its settlement rules.
//
// A bill is created atomically with the parcel it charges for, one per
// parcel. Settlement timing depends on the payment method: credit card and
// mobile payments settle at creation, prepaid settles at creation after a
// successful customer balance debit, cash and monthly bills are settled
// later.
//
// The billed amount may only be revised while the bill is unpaid; the paid
// flag moves one way, from false to true.
package billing
