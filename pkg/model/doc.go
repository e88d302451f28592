// Package model defines the registration form data shared by the validation,
// orchestration, and submission packages. Field identifiers mirror the input
// names of the hosted form (`fullName`, `cnic`, ...), statuses are the
// tri-state validity flags a presenter renders, and Payload is the immutable
// record handed to the submission transport. Nothing in this package outlives
// a single form session.
package model
