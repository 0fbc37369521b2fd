package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerifyMedicationsStep is the checklist step that barcode verification
// auto-completes. The name is matched literally.
const VerifyMedicationsStep = "Verify Medications"

// DefaultChecklistSteps are the preparation steps created with every pack,
// in presentation order.
var DefaultChecklistSteps = []string{
	"Load Blister Pack",
	VerifyMedicationsStep,
	"Check Dosages",
	"Final Check",
}

// ChecklistItem is one discrete preparation step gating pack completion.
// CompletedAt and PharmacistID are set exactly when Completed is true; the
// workflow never deletes items while the pack exists.
//
// @Description Preparation checklist step for a webster pack
type ChecklistItem struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PackID       primitive.ObjectID  `bson:"webster_pack_id" json:"webster_pack_id"`
	StepName     string              `bson:"step_name" json:"step_name" example:"Verify Medications"`
	Completed    bool                `bson:"completed" json:"completed"`
	CompletedAt  *time.Time          `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	PharmacistID *primitive.ObjectID `bson:"pharmacist_id,omitempty" json:"pharmacist_id,omitempty"`
	Notes        string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
} // @name ChecklistItem

// AllCompleted reports whether every item in the slice is completed.
// An empty checklist counts as incomplete so a pack with no steps can never
// auto-complete.
func AllCompleted(items []ChecklistItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.Completed {
			return false
		}
	}
	return true
}
