//go:build !integration

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medpak/webster-service/internal/domain/model"
)

func TestPackStatus_Valid(t *testing.T) {
	tests := []struct {
		status model.PackStatus
		valid  bool
	}{
		{model.StatusPending, true},
		{model.StatusInProgress, true},
		{model.StatusCompleted, true},
		{model.PackStatus("archived"), false},
		{model.PackStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}

func TestPackStatus_Terminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.Terminal())
	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusInProgress.Terminal())
}

func TestTimeOfDay_Valid(t *testing.T) {
	for _, tod := range []model.TimeOfDay{
		model.TimeOfDayMorning,
		model.TimeOfDayNoon,
		model.TimeOfDayEvening,
		model.TimeOfDayNight,
		model.TimeOfDayUnspecified,
	} {
		assert.True(t, tod.Valid(), string(tod))
	}

	assert.False(t, model.TimeOfDay("afternoon").Valid())
	assert.False(t, model.TimeOfDay("").Valid())
}

func TestAllCompleted(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ChecklistItem
		want  bool
	}{
		{
			name:  "empty checklist never completes",
			items: nil,
			want:  false,
		},
		{
			name: "all items completed",
			items: []model.ChecklistItem{
				{Completed: true},
				{Completed: true},
			},
			want: true,
		},
		{
			name: "one open item",
			items: []model.ChecklistItem{
				{Completed: true},
				{Completed: false},
				{Completed: true},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.AllCompleted(tt.items))
		})
	}
}

func TestDefaultChecklistSteps_ContainVerifyStep(t *testing.T) {
	assert.Contains(t, model.DefaultChecklistSteps, model.VerifyMedicationsStep)
	assert.Len(t, model.DefaultChecklistSteps, 4)
}

func TestCustomer_FullName(t *testing.T) {
	c := model.Customer{FirstName: "Margaret", LastName: "Whitlam"}
	assert.Equal(t, "Margaret Whitlam", c.FullName())

	assert.Equal(t, "Margaret", model.Customer{FirstName: "Margaret"}.FullName())
	assert.Equal(t, "", model.Customer{}.FullName())
}

func TestAuditEntry_WithField(t *testing.T) {
	e := &model.AuditEntry{Action: model.ActionScanVerified}
	e.WithField("barcode", "9312345678907").WithField("attempt", 1)

	assert.Equal(t, "9312345678907", e.Fields["barcode"])
	assert.Equal(t, 1, e.Fields["attempt"])
}
