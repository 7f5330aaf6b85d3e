package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ListingPatch is a partial update: only non-nil fields overwrite the stored
// values, absent fields leave them untouched. The variant blocks may only
// patch the variant the listing already is; the discriminator itself is
// immutable.
type ListingPatch struct {
	Title       *string
	Description *string
	Price       *primitive.Decimal128
	Currency    *Currency
	Status      *ListingStatus
	OfferType   *OfferType
	City        *string
	District    *string
	Latitude    *float64
	Longitude   *float64
	CategoryID  *string

	RealEstate *RealEstatePatch
	Vehicle    *VehiclePatch
	Land       *LandPatch
	Workplace  *WorkplacePatch
}

type RealEstatePatch struct {
	Type        *RealEstateType
	RoomCount   *string
	SquareMeter *int
	BuildingAge *int
	Floor       *int
	HeatingType *HeatingType
	Furnished   *bool
}

type VehiclePatch struct {
	Brand        *string
	Model        *string
	Year         *int
	FuelType     *FuelType
	Transmission *Transmission
	Kilometer    *int
	EngineVolume *string

	Series           *string
	VehicleStatus    *string
	BodyType         *string
	EnginePower      *string
	TractionType     *string
	Color            *string
	Warranty         *bool
	HeavyDamage      *bool
	PlateNationality *string
	FromWho          *string
	Exchange         *bool
}

type LandPatch struct {
	LandType     *string
	SquareMeter  *int
	ZoningStatus *string
	ParcelNumber *string
	IslandNumber *string
}

type WorkplacePatch struct {
	WorkplaceType *string
	SquareMeter   *int
	FloorCount    *int
	Furnished     *bool

	Heating           *string
	BuildingAge       *int
	Dues              *int
	CreditEligibility *bool
	DeedStatus        *string
	ListingFrom       *string
	Exchange          *bool
}
