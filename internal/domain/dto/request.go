// Package dto defines Data Transfer Objects for HTTP request and response
// handling.
//
// DTOs decouple the HTTP layer from the domain model and carry validation for
// API communication.
package dto

import (
	"time"

	"github.com/medpak/webster-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateCustomerRequest is the JSON body for customer creation.
//
// @Description Request to register a pharmacy customer
type CreateCustomerRequest struct {
	FirstName           string    `json:"first_name" binding:"required" example:"Margaret"`
	LastName            string    `json:"last_name" binding:"required" example:"Whitlam"`
	MedicareNumber      string    `json:"medicare_number" binding:"required" example:"2950 61234 1"`
	DateOfBirth         time.Time `json:"date_of_birth" binding:"required"`
	Phone               string    `json:"phone,omitempty"`
	Address             string    `json:"address,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
} // @name CreateCustomerRequest

// CreateMedicationRequest is the JSON body for adding a catalog entry.
//
// @Description Request to add a medication to the catalog
type CreateMedicationRequest struct {
	BrandName string `json:"brand_name" binding:"required" example:"Lipitor"`
	Strength  string `json:"strength" binding:"required" example:"20mg"`
	Form      string `json:"form" binding:"required" example:"tablet"`
	Barcode   string `json:"barcode" binding:"required" example:"9312345678907"`
} // @name CreateMedicationRequest

// PackMedicationInput is one medication line in a pack creation request.
type PackMedicationInput struct {
	MedicationID        string `json:"medication_id" binding:"required"`
	Dosage              string `json:"dosage" binding:"required" example:"1 tablet"`
	Frequency           string `json:"frequency" binding:"required" example:"daily"`
	TimeOfDay           string `json:"time_of_day,omitempty" example:"morning"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
} // @name PackMedicationInput

// CreatePackRequest is the JSON body for initiating a webster pack.
// PharmacistID is optional; when present the pack starts in_progress,
// otherwise pending.
//
// @Description Request to initiate a webster pack preparation cycle
type CreatePackRequest struct {
	CustomerID   string                `json:"customer_id" binding:"required"`
	PharmacistID string                `json:"pharmacist_id,omitempty"`
	StartDate    time.Time             `json:"start_date" binding:"required"`
	EndDate      time.Time             `json:"end_date" binding:"required"`
	Medications  []PackMedicationInput `json:"medications" binding:"required,min=1,dive"`
} // @name CreatePackRequest

// Validate performs cross-field validation beyond binding tags.
func (r *CreatePackRequest) Validate() error {
	if r.EndDate.Before(r.StartDate) {
		return &ValidationError{Field: "end_date", Message: "must not be before start_date"}
	}
	for i := range r.Medications {
		tod := r.Medications[i].TimeOfDay
		if tod != "" && !model.TimeOfDay(tod).Valid() {
			return &ValidationError{Field: "medications.time_of_day", Message: "unknown time of day: " + tod}
		}
	}
	return nil
}

// CompleteStepRequest is the JSON body when marking a checklist step complete.
// The acting pharmacist comes from the bearer token, not the body.
//
// @Description Request to mark a checklist step complete
type CompleteStepRequest struct {
	Notes string `json:"notes,omitempty" example:"Double-checked against script"`
} // @name CompleteStepRequest

// ScanRequest is the JSON body for a decoded barcode event posted by a
// scanning device.
//
// @Description Decoded barcode submitted for verification
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required" example:"9312345678907"`
} // @name ScanRequest

// Validate rejects blank barcodes that survive binding (e.g. whitespace).
func (r *ScanRequest) Validate() error {
	if r.Barcode == "" {
		return &ValidationError{Field: "barcode", Message: "must not be empty"}
	}
	return nil
}
