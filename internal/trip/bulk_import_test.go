package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTripRow(t *testing.T) {
	valid := TripRequest{
		Date:       "2025-03-01",
		Customer:   "Shree Constructions",
		QuarryName: "Kharun Sand Depot",
		NetWeight:  18,
		Revenue:    9000,
	}

	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantErr string
	}{
		{"valid row", func(r *TripRequest) {}, ""},
		{"missing date", func(r *TripRequest) { r.Date = "" }, "date is required"},
		{"bad date format", func(r *TripRequest) { r.Date = "01/03/2025" }, "date must be 'YYYY-MM-DD'"},
		{"no party at all", func(r *TripRequest) {
			r.Customer = ""
			r.QuarryName = ""
		}, "at least one party name is required"},
		{"only one party is fine", func(r *TripRequest) { r.QuarryName = "" }, ""},
		{"negative weight", func(r *TripRequest) { r.NetWeight = -1 }, "net_weight cannot be negative"},
		{"negative money", func(r *TripRequest) { r.Revenue = -100 }, "money fields cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)
			err := validateTripRow(row)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestTripFromRequestNormalizes(t *testing.T) {
	row := TripRequest{
		Date:      "2025-03-01",
		Customer:  "  Shree Constructions  ",
		VehicleNo: " CG04AB1234 ",
		NetWeight: 18,
	}

	trip, err := tripFromRequest(row)
	assert.NoError(t, err)
	assert.Equal(t, "Shree Constructions", trip.Customer)
	assert.Equal(t, "CG04AB1234", trip.VehicleNo)
	// the legacy tonnage column tracks net weight for new rows
	assert.Equal(t, trip.NetWeight, trip.Tonnage)
}
