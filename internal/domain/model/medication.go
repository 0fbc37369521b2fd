package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeOfDay is the dosing slot a medication belongs to within a webster pack.
type TimeOfDay string

// Dosing slots. Unspecified is used when a prescriber gives no slot.
const (
	TimeOfDayMorning     TimeOfDay = "morning"
	TimeOfDayNoon        TimeOfDay = "noon"
	TimeOfDayEvening     TimeOfDay = "evening"
	TimeOfDayNight       TimeOfDay = "night"
	TimeOfDayUnspecified TimeOfDay = "unspecified"
)

// Valid reports whether t is a known dosing slot.
func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayNoon, TimeOfDayEvening, TimeOfDayNight, TimeOfDayUnspecified:
		return true
	}
	return false
}

// Medication is a catalog entry. The workflow treats the catalog as read-only
// reference data; the barcode is the scannable GTIN printed on the box.
//
// @Description Medication catalog entry
type Medication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandName string             `bson:"brand_name" json:"brand_name" example:"Lipitor"`
	Strength  string             `bson:"strength" json:"strength" example:"20mg"`
	Form      string             `bson:"form" json:"form" example:"tablet"`
	Barcode   string             `bson:"barcode" json:"barcode" example:"9312345678907"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
} // @name Medication

// PackMedication binds one medication to one webster pack with its dosing
// details. It is owned by the pack and deleted with it.
//
// @Description Medication line item within a webster pack
type PackMedication struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PackID              primitive.ObjectID `bson:"webster_pack_id" json:"webster_pack_id"`
	MedicationID        primitive.ObjectID `bson:"medication_id" json:"medication_id"`
	Dosage              string             `bson:"dosage" json:"dosage" example:"1 tablet"`
	Frequency           string             `bson:"frequency" json:"frequency" example:"daily"`
	TimeOfDay           TimeOfDay          `bson:"time_of_day" json:"time_of_day" example:"morning"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`

	// Medication is populated on joined reads, never persisted on the line item.
	Medication *Medication `bson:"medication,omitempty" json:"medication,omitempty"`
} // @name PackMedication
