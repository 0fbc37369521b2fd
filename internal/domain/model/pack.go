package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackStatus is the lifecycle state of a webster pack. The workflow only ever
// moves a pack forward; there is no transition out of completed.
type PackStatus string

const (
	// StatusPending means the pack has been created but no pharmacist has
	// started preparing it.
	StatusPending PackStatus = "pending"
	// StatusInProgress means preparation has started. Set at creation time
	// when a pharmacist is assigned, never by status derivation.
	StatusInProgress PackStatus = "in_progress"
	// StatusCompleted means every checklist item has been signed off.
	StatusCompleted PackStatus = "completed"
)

// Valid reports whether s is a known pack status.
func (s PackStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further checklist mutations.
func (s PackStatus) Terminal() bool {
	return s == StatusCompleted
}

// WebsterPack is one preparation cycle of a multi-dose organizer for one
// customer over a date range. The pack owns its checklist items and
// medication line items.
//
// @Description Webster pack preparation record
type WebsterPack struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CustomerID   primitive.ObjectID  `bson:"customer_id" json:"customer_id"`
	PharmacistID *primitive.ObjectID `bson:"pharmacist_id,omitempty" json:"pharmacist_id,omitempty"`
	Status       PackStatus          `bson:"status" json:"status" example:"in_progress"`
	StartDate    time.Time           `bson:"start_date" json:"start_date"`
	EndDate      time.Time           `bson:"end_date" json:"end_date"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`

	// Customer is populated on joined reads only.
	Customer *Customer `bson:"customer,omitempty" json:"customer,omitempty"`
} // @name WebsterPack

// StatusCount is one bucket of the dashboard summary aggregation.
type StatusCount struct {
	Status PackStatus `bson:"_id" json:"status"`
	Count  int64      `bson:"count" json:"count"`
}
