// Package service contains the business logic for the webster service.
package service

import "errors"

// Workflow error taxonomy. Persistence faults are wrapped with %w and are
// distinguishable from these sentinels via errors.Is.
var (
	// ErrPackAlreadyCompleted rejects any checklist mutation on a pack whose
	// status is terminal. The action performs no mutation.
	ErrPackAlreadyCompleted = errors.New("webster pack has already been completed")

	// ErrStepNotFound means the checklist item does not belong to the
	// referenced pack; this indicates the caller's UI state is stale.
	ErrStepNotFound = errors.New("checklist step does not belong to this pack")

	// ErrPackNotFound means the referenced pack does not exist.
	ErrPackNotFound = errors.New("webster pack not found")

	// ErrCustomerNotFound means the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrMedicationNotFound means the referenced catalog entry does not exist.
	ErrMedicationNotFound = errors.New("medication not found")
)
