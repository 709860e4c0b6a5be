package party

import (
	"testing"

	"trucklog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() Snapshot {
	return Snapshot{
		VendorCustomers: []models.VendorCustomer{
			{ID: 10, Name: "Shree Constructions"},
			{ID: 11, Name: "Balaji Infra"},
		},
		Customers: []models.Customer{
			{ID: 3, Name: "Shree Constructions"}, // same name as modern id 10
			{ID: 4, Name: "Old Town Builders"},
		},
		MineQuarries: []models.MineQuarry{
			{ID: 20, Name: "Kharun Sand Depot"},
		},
		Quarries: []models.Quarry{
			{ID: 5, QuarryName: "Bhilai Stone Quarry"},
		},
		TransportOwners: []models.TransportOwnerProfile{
			{ID: 30, Name: "Yadav Transport"},
		},
		Vehicles: []models.Vehicle{
			{ID: 7, RegistrationNo: "CG04AB1234", OwnerName: "Ramesh Sahu"},
		},
		RoyaltyOwners: []models.RoyaltyOwnerProfile{
			{ID: 40, Name: "Verma Royalty"},
		},
		LegacyRoyaltyOwners: []models.RoyaltyOwner{
			{ID: 8, OwnerName: "Verma Royalty"}, // collides with modern id 40
		},
	}
}

func TestTripMatchesModernAndLegacy(t *testing.T) {
	r := NewResolver(testSnapshot())

	tests := []struct {
		name  string
		trip  models.Trip
		pt    models.PartyType
		id    uint
		match bool
	}{
		{"modern customer", models.Trip{Customer: "Balaji Infra"}, models.PartyTypeCustomer, 11, true},
		{"legacy customer", models.Trip{Customer: "Old Town Builders"}, models.PartyTypeCustomer, 4, true},
		{"collision matches modern id", models.Trip{Customer: "Shree Constructions"}, models.PartyTypeCustomer, 10, true},
		{"collision matches legacy id", models.Trip{Customer: "Shree Constructions"}, models.PartyTypeCustomer, 3, true},
		{"wrong id", models.Trip{Customer: "Balaji Infra"}, models.PartyTypeCustomer, 99, false},
		{"unknown name excluded", models.Trip{Customer: "No Such Firm"}, models.PartyTypeCustomer, 11, false},
		{"empty name excluded", models.Trip{}, models.PartyTypeCustomer, 11, false},
		{"modern quarry", models.Trip{QuarryName: "Kharun Sand Depot"}, models.PartyTypeQuarry, 20, true},
		{"legacy quarry", models.Trip{QuarryName: "Bhilai Stone Quarry"}, models.PartyTypeQuarry, 5, true},
		{"legacy transporter via vehicle owner", models.Trip{TransporterName: "Ramesh Sahu"}, models.PartyTypeTransport, 7, true},
		{"modern transporter", models.Trip{TransporterName: "Yadav Transport"}, models.PartyTypeTransport, 30, true},
		{"royalty collision either id", models.Trip{RoyaltyOwnerName: "Verma Royalty"}, models.PartyTypeRoyalty, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, r.TripMatches(tt.trip, tt.pt, tt.id))
		})
	}
}

func TestNameByID(t *testing.T) {
	r := NewResolver(testSnapshot())

	name, ok := r.NameByID(models.PartyTypeCustomer, 11)
	require.True(t, ok)
	assert.Equal(t, "Balaji Infra", name)

	// legacy id resolves too
	name, ok = r.NameByID(models.PartyTypeCustomer, 4)
	require.True(t, ok)
	assert.Equal(t, "Old Town Builders", name)

	// orphaned reference
	_, ok = r.NameByID(models.PartyTypeCustomer, 999)
	assert.False(t, ok)
}

func TestNameByIDModernWinsOnIDCollision(t *testing.T) {
	snap := Snapshot{
		VendorCustomers: []models.VendorCustomer{{ID: 1, Name: "Modern Name"}},
		Customers:       []models.Customer{{ID: 1, Name: "Legacy Name"}},
	}
	r := NewResolver(snap)

	name, ok := r.NameByID(models.PartyTypeCustomer, 1)
	require.True(t, ok)
	assert.Equal(t, "Modern Name", name)
}
