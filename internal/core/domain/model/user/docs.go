// Package user provides the account model of the tracking system.
//
// A User is a tagged union: one record carrying a Role discriminator plus
// exactly one role-specific profile payload (customer, driver, warehouse or
// employee). Customers additionally carry a balance used by prepaid
// settlement; debits past zero are rejected.
//
// Passwords are stored as bcrypt hashes via HashPassword and verified with
// CheckPassword.
package user
