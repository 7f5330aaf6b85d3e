package usecase

import (
	"strconv"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// fieldSpec is one row of the fixed per-category comparison table: a display
// name and an extractor producing the formatted value for a listing.
type fieldSpec struct {
	name  string
	value func(l *domain.Listing) string
}

// commonFields lead every comparison regardless of category.
var commonFields = []fieldSpec{
	{"Price", func(l *domain.Listing) string { return FormatPrice(l.Price, l.Currency) }},
	{"City", func(l *domain.Listing) string { return l.City }},
	{"District", func(l *domain.Listing) string { return l.District }},
}

func comparisonFields(t domain.ListingType) []fieldSpec {
	fields := make([]fieldSpec, 0, 24)
	fields = append(fields, commonFields...)

	switch t {
	case domain.TypeRealEstate:
		fields = append(fields, realEstateFields...)
	case domain.TypeVehicle:
		fields = append(fields, vehicleFields...)
	case domain.TypeLand:
		fields = append(fields, landFields...)
	case domain.TypeWorkplace:
		fields = append(fields, workplaceFields...)
	}
	return fields
}

var realEstateFields = []fieldSpec{
	{"Type", func(l *domain.Listing) string {
		return DisplayLabel("real_estate_type", string(l.RealEstate.Type))
	}},
	{"Room Count", func(l *domain.Listing) string { return orDash(l.RealEstate.RoomCount) }},
	{"Square Meter", func(l *domain.Listing) string { return strconv.Itoa(l.RealEstate.SquareMeter) }},
	{"Building Age", func(l *domain.Listing) string { return strconv.Itoa(l.RealEstate.BuildingAge) }},
	{"Floor", func(l *domain.Listing) string { return strconv.Itoa(l.RealEstate.Floor) }},
	{"Heating", func(l *domain.Listing) string {
		return DisplayLabel("heating_type", string(l.RealEstate.HeatingType))
	}},
	{"Furnished", func(l *domain.Listing) string { return boolLabel(l.RealEstate.Furnished) }},
}

// vehicleFields follows the fixed ordering of the vehicle comparison table.
var vehicleFields = []fieldSpec{
	{"Brand", func(l *domain.Listing) string { return orDash(l.Vehicle.Brand) }},
	{"Series", func(l *domain.Listing) string { return strOrDash(l.Vehicle.Series) }},
	{"Model", func(l *domain.Listing) string { return orDash(l.Vehicle.Model) }},
	{"Year", func(l *domain.Listing) string { return strconv.Itoa(l.Vehicle.Year) }},
	{"Fuel Type", func(l *domain.Listing) string {
		return DisplayLabel("fuel_type", string(l.Vehicle.FuelType))
	}},
	{"Transmission", func(l *domain.Listing) string {
		return DisplayLabel("transmission", string(l.Vehicle.Transmission))
	}},
	{"Vehicle Status", func(l *domain.Listing) string { return strOrDash(l.Vehicle.VehicleStatus) }},
	{"Kilometer", func(l *domain.Listing) string { return strconv.Itoa(l.Vehicle.Kilometer) }},
	{"Body Type", func(l *domain.Listing) string { return strOrDash(l.Vehicle.BodyType) }},
	{"Engine Power", func(l *domain.Listing) string { return strOrDash(l.Vehicle.EnginePower) }},
	{"Engine Volume", func(l *domain.Listing) string { return orDash(l.Vehicle.EngineVolume) }},
	{"Traction", func(l *domain.Listing) string { return strOrDash(l.Vehicle.TractionType) }},
	{"Color", func(l *domain.Listing) string { return strOrDash(l.Vehicle.Color) }},
	{"Warranty", func(l *domain.Listing) string { return boolOrDash(l.Vehicle.Warranty) }},
	{"Heavy Damage", func(l *domain.Listing) string { return boolOrDash(l.Vehicle.HeavyDamage) }},
	{"Plate Nationality", func(l *domain.Listing) string { return strOrDash(l.Vehicle.PlateNationality) }},
	{"From Who", func(l *domain.Listing) string { return strOrDash(l.Vehicle.FromWho) }},
	{"Exchange", func(l *domain.Listing) string { return boolOrDash(l.Vehicle.Exchange) }},
}

var landFields = []fieldSpec{
	{"Land Type", func(l *domain.Listing) string { return orDash(l.Land.LandType) }},
	{"Square Meter", func(l *domain.Listing) string { return strconv.Itoa(l.Land.SquareMeter) }},
	{"Zoning Status", func(l *domain.Listing) string { return orDash(l.Land.ZoningStatus) }},
	{"Parcel Number", func(l *domain.Listing) string { return orDash(l.Land.ParcelNumber) }},
	{"Island Number", func(l *domain.Listing) string { return orDash(l.Land.IslandNumber) }},
}

var workplaceFields = []fieldSpec{
	{"Workplace Type", func(l *domain.Listing) string { return orDash(l.Workplace.WorkplaceType) }},
	{"Square Meter", func(l *domain.Listing) string { return strconv.Itoa(l.Workplace.SquareMeter) }},
	{"Floor Count", func(l *domain.Listing) string { return strconv.Itoa(l.Workplace.FloorCount) }},
	{"Furnished", func(l *domain.Listing) string { return boolLabel(l.Workplace.Furnished) }},
	{"Heating", func(l *domain.Listing) string { return strOrDash(l.Workplace.Heating) }},
	{"Building Age", func(l *domain.Listing) string { return intOrDash(l.Workplace.BuildingAge) }},
	{"Dues", func(l *domain.Listing) string { return intOrDash(l.Workplace.Dues) }},
	{"Credit Eligibility", func(l *domain.Listing) string { return boolOrDash(l.Workplace.CreditEligibility) }},
	{"Deed Status", func(l *domain.Listing) string { return strOrDash(l.Workplace.DeedStatus) }},
	{"Listing From", func(l *domain.Listing) string { return strOrDash(l.Workplace.ListingFrom) }},
	{"Exchange", func(l *domain.Listing) string { return boolOrDash(l.Workplace.Exchange) }},
}

func orDash(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return missingValue
	}
	return *s
}

func intOrDash(v *int) string {
	if v == nil {
		return missingValue
	}
	return strconv.Itoa(*v)
}

func boolOrDash(v *bool) string {
	if v == nil {
		return missingValue
	}
	return boolLabel(*v)
}
