package party

import (
	"trucklog-backend/internal/models"
)

// Snapshot - the master-data lists a resolver is built from, fetched once
// per request. Modern lists are the id-keyed records; legacy lists are the
// pre-migration name-keyed records for the same conceptual entities.
type Snapshot struct {
	VendorCustomers     []models.VendorCustomer
	Customers           []models.Customer
	MineQuarries        []models.MineQuarry
	Quarries            []models.Quarry
	TransportOwners     []models.TransportOwnerProfile
	Vehicles            []models.Vehicle
	RoyaltyOwners       []models.RoyaltyOwnerProfile
	LegacyRoyaltyOwners []models.RoyaltyOwner
}

// Resolver joins trips' free-text party names against both schemas with
// O(1) lookups instead of re-scanning the lists per trip. A name present
// in both schemas is treated as the same entity; a name in neither list
// resolves to nothing and the trip drops out of that party's history.
type Resolver struct {
	modern map[models.PartyType]map[string]uint
	legacy map[models.PartyType]map[string]uint
	names  map[models.PartyType]map[uint]string
}

func NewResolver(snap Snapshot) *Resolver {
	r := &Resolver{
		modern: make(map[models.PartyType]map[string]uint),
		legacy: make(map[models.PartyType]map[string]uint),
		names:  make(map[models.PartyType]map[uint]string),
	}
	for _, pt := range []models.PartyType{
		models.PartyTypeCustomer,
		models.PartyTypeQuarry,
		models.PartyTypeTransport,
		models.PartyTypeRoyalty,
	} {
		r.modern[pt] = make(map[string]uint)
		r.legacy[pt] = make(map[string]uint)
		r.names[pt] = make(map[uint]string)
	}

	for _, vc := range snap.VendorCustomers {
		r.addModern(models.PartyTypeCustomer, vc.Name, vc.ID)
	}
	for _, q := range snap.MineQuarries {
		r.addModern(models.PartyTypeQuarry, q.Name, q.ID)
	}
	for _, t := range snap.TransportOwners {
		r.addModern(models.PartyTypeTransport, t.Name, t.ID)
	}
	for _, ro := range snap.RoyaltyOwners {
		r.addModern(models.PartyTypeRoyalty, ro.Name, ro.ID)
	}

	for _, c := range snap.Customers {
		r.addLegacy(models.PartyTypeCustomer, c.Name, c.ID)
	}
	for _, q := range snap.Quarries {
		r.addLegacy(models.PartyTypeQuarry, q.QuarryName, q.ID)
	}
	for _, v := range snap.Vehicles {
		r.addLegacy(models.PartyTypeTransport, v.OwnerName, v.ID)
	}
	for _, ro := range snap.LegacyRoyaltyOwners {
		r.addLegacy(models.PartyTypeRoyalty, ro.OwnerName, ro.ID)
	}

	return r
}

func (r *Resolver) addModern(pt models.PartyType, name string, id uint) {
	if name == "" {
		return
	}
	r.modern[pt][name] = id
	r.names[pt][id] = name
}

func (r *Resolver) addLegacy(pt models.PartyType, name string, id uint) {
	if name == "" {
		return
	}
	r.legacy[pt][name] = id
	// The modern list wins when a legacy id collides with a modern one.
	if _, exists := r.names[pt][id]; !exists {
		r.names[pt][id] = name
	}
}

// TripPartyName returns the trip field holding the party name for a role.
func TripPartyName(trip models.Trip, pt models.PartyType) string {
	switch pt {
	case models.PartyTypeCustomer:
		return trip.Customer
	case models.PartyTypeQuarry:
		return trip.QuarryName
	case models.PartyTypeTransport:
		return trip.TransporterName
	case models.PartyTypeRoyalty:
		return trip.RoyaltyOwnerName
	}
	return ""
}

// TripMatches reports whether the trip belongs to the party identified by
// (pt, id). The trip's name is looked up against both the modern and the
// legacy list; a hit in either counts.
func (r *Resolver) TripMatches(trip models.Trip, pt models.PartyType, id uint) bool {
	name := TripPartyName(trip, pt)
	if name == "" {
		return false
	}
	if mid, ok := r.modern[pt][name]; ok && mid == id {
		return true
	}
	if lid, ok := r.legacy[pt][name]; ok && lid == id {
		return true
	}
	return false
}

// NameByID resolves a (type, id) reference back to its canonical name.
// Returns false for orphaned references (master record deleted after the
// event was recorded).
func (r *Resolver) NameByID(pt models.PartyType, id uint) (string, bool) {
	m, ok := r.names[pt]
	if !ok {
		return "", false
	}
	name, ok := m[id]
	return name, ok
}
