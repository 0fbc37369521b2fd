// Package model defines the core domain entities for the webster service.
package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a pharmacy customer for whom webster packs are prepared.
// The preparation workflow only ever reads customers; mutations happen
// through the customer endpoints.
//
// @Description Pharmacy customer record
type Customer struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName           string             `bson:"first_name" json:"first_name" example:"Margaret"`
	LastName            string             `bson:"last_name" json:"last_name" example:"Whitlam"`
	MedicareNumber      string             `bson:"medicare_number" json:"medicare_number" example:"2950 61234 1"`
	DateOfBirth         time.Time          `bson:"date_of_birth" json:"date_of_birth"`
	Phone               string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address             string             `bson:"address,omitempty" json:"address,omitempty"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
} // @name Customer

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
