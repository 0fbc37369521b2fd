package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded by the preparation workflow.
const (
	ActionStepCompleted = "step_completed"
	ActionPackCompleted = "pack_completed"
	ActionScanVerified  = "scan_verified"
	ActionScanUnmatched = "scan_unmatched"
	ActionPackCreated   = "pack_created"
	// ActionAPIRequest is the catch-all entry the HTTP layer records for
	// every mutating request.
	ActionAPIRequest = "api_request"
)

// AuditEntry is one persisted record of a workflow action. Entries expire via
// a TTL index on Timestamp; retention is configured at startup.
type AuditEntry struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp    time.Time              `bson:"timestamp" json:"timestamp"`
	Action       string                 `bson:"action" json:"action"`
	Message      string                 `bson:"message" json:"message"`
	RequestID    string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	PackID       string                 `bson:"pack_id,omitempty" json:"pack_id,omitempty"`
	PharmacistID string                 `bson:"pharmacist_id,omitempty" json:"pharmacist_id,omitempty"`
	Error        string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields       map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds one field to the entry, initializing Fields when needed.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// AuditQuery filters audit reads. Zero values mean "any".
type AuditQuery struct {
	PackID       string
	PharmacistID string
	Action       string
	Since        *time.Time
	Until        *time.Time
	Limit        int
	Skip         int
}
