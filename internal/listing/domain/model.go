package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingType discriminates the four listing variants. It is assigned at
// creation time and carried through every layer; it is never re-derived from
// the shape of the payload.
type ListingType string

const (
	TypeRealEstate ListingType = "REAL_ESTATE"
	TypeVehicle    ListingType = "VEHICLE"
	TypeLand       ListingType = "LAND"
	TypeWorkplace  ListingType = "WORKPLACE"
)

// AllListingTypes returns the variants in feed order. The aggregated feed
// concatenates category result sets in exactly this order.
func AllListingTypes() []ListingType {
	return []ListingType{TypeRealEstate, TypeVehicle, TypeLand, TypeWorkplace}
}

type ListingStatus string

const (
	StatusActive  ListingStatus = "ACTIVE"
	StatusPassive ListingStatus = "PASSIVE"
	StatusSold    ListingStatus = "SOLD"
	StatusExpired ListingStatus = "EXPIRED"
)

type OfferType string

const (
	OfferForSale OfferType = "FOR_SALE"
	OfferForRent OfferType = "FOR_RENT"
)

type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

const maxTitleLength = 150

// Listing is the tagged union shared by all four categories: one core value
// plus exactly one variant payload selected by Type.
type Listing struct {
	ID            int64                `json:"id"`
	Type          ListingType          `json:"listingType"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Price         primitive.Decimal128 `json:"price"`
	Currency      Currency             `json:"currency"`
	Status        ListingStatus        `json:"status"`
	OfferType     OfferType            `json:"offerType"`
	City          string               `json:"city"`
	District      string               `json:"district"`
	Latitude      *float64             `json:"latitude,omitempty"`
	Longitude     *float64             `json:"longitude,omitempty"`
	CategoryID    string               `json:"categoryId"`
	CreatedBy     string               `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	ViewCount     int64                `json:"viewCount"`
	FavoriteCount int64                `json:"favoriteCount"`

	RealEstate *RealEstateDetails `json:"realEstate,omitempty"`
	Vehicle    *VehicleDetails    `json:"vehicle,omitempty"`
	Land       *LandDetails       `json:"land,omitempty"`
	Workplace  *WorkplaceDetails  `json:"workplace,omitempty"`
}

type RealEstateType string

const (
	RealEstateFlat      RealEstateType = "FLAT"
	RealEstateVilla     RealEstateType = "VILLA"
	RealEstateDetached  RealEstateType = "DETACHED_HOUSE"
	RealEstateResidence RealEstateType = "RESIDENCE"
	RealEstateBuilding  RealEstateType = "BUILDING"
)

type HeatingType string

const (
	HeatingNaturalGas HeatingType = "NATURAL_GAS"
	HeatingCentral    HeatingType = "CENTRAL"
	HeatingStove      HeatingType = "STOVE"
	HeatingFloor      HeatingType = "FLOOR_HEATING"
	HeatingAC         HeatingType = "AIR_CONDITIONING"
	HeatingNone       HeatingType = "NONE"
)

type RealEstateDetails struct {
	Type        RealEstateType `json:"type"`
	RoomCount   string         `json:"roomCount"`
	SquareMeter int            `json:"squareMeter"`
	BuildingAge int            `json:"buildingAge"`
	Floor       int            `json:"floor"`
	HeatingType HeatingType    `json:"heatingType"`
	Furnished   bool           `json:"furnished"`
}

type FuelType string

const (
	FuelGasoline FuelType = "GASOLINE"
	FuelDiesel   FuelType = "DIESEL"
	FuelLPG      FuelType = "LPG"
	FuelHybrid   FuelType = "HYBRID"
	FuelElectric FuelType = "ELECTRIC"
)

type Transmission string

const (
	TransmissionManual    Transmission = "MANUAL"
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionSemiAuto  Transmission = "SEMI_AUTOMATIC"
)

type VehicleDetails struct {
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	Kilometer    int          `json:"kilometer"`
	EngineVolume string       `json:"engineVolume"`

	Series           *string `json:"series,omitempty"`
	VehicleStatus    *string `json:"vehicleStatus,omitempty"`
	BodyType         *string `json:"bodyType,omitempty"`
	EnginePower      *string `json:"enginePower,omitempty"`
	TractionType     *string `json:"tractionType,omitempty"`
	Color            *string `json:"color,omitempty"`
	Warranty         *bool   `json:"warranty,omitempty"`
	HeavyDamage      *bool   `json:"heavyDamage,omitempty"`
	PlateNationality *string `json:"plateNationality,omitempty"`
	FromWho          *string `json:"fromWho,omitempty"`
	Exchange         *bool   `json:"exchange,omitempty"`
}

type LandDetails struct {
	LandType     string `json:"landType"`
	SquareMeter  int    `json:"squareMeter"`
	ZoningStatus string `json:"zoningStatus"`
	ParcelNumber string `json:"parcelNumber"`
	IslandNumber string `json:"islandNumber"`
}

type WorkplaceDetails struct {
	WorkplaceType string `json:"workplaceType"`
	SquareMeter   int    `json:"squareMeter"`
	FloorCount    int    `json:"floorCount"`
	Furnished     bool   `json:"furnished"`

	Heating           *string `json:"heating,omitempty"`
	BuildingAge       *int    `json:"buildingAge,omitempty"`
	Dues              *int    `json:"dues,omitempty"`
	CreditEligibility *bool   `json:"creditEligibility,omitempty"`
	DeedStatus        *string `json:"deedStatus,omitempty"`
	ListingFrom       *string `json:"listingFrom,omitempty"`
	Exchange          *bool   `json:"exchange,omitempty"`
}

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// Validate checks the core invariants of a listing before it is persisted:
// a non-empty title within the length limit, a positive price, a located
// category reference and exactly one variant payload matching Type.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len([]rune(l.Title)) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLength)
	}
	if !decimalPositive(l.Price) {
		return fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	if l.City == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if l.CategoryID == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if (l.Latitude == nil) != (l.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", ErrValidation)
	}
	return l.validateVariant()
}

func (l *Listing) validateVariant() error {
	variants := 0
	if l.RealEstate != nil {
		variants++
	}
	if l.Vehicle != nil {
		variants++
	}
	if l.Land != nil {
		variants++
	}
	if l.Workplace != nil {
		variants++
	}
	if variants != 1 {
		return fmt.Errorf("%w: listing must carry exactly one variant payload", ErrValidation)
	}

	var match bool
	switch l.Type {
	case TypeRealEstate:
		match = l.RealEstate != nil
	case TypeVehicle:
		match = l.Vehicle != nil
	case TypeLand:
		match = l.Land != nil
	case TypeWorkplace:
		match = l.Workplace != nil
	default:
		return fmt.Errorf("%w: unknown listing type %q", ErrValidation, l.Type)
	}
	if !match {
		return fmt.Errorf("%w: variant payload does not match listing type %s", ErrValidation, l.Type)
	}
	return nil
}

func decimalPositive(d primitive.Decimal128) bool {
	big, _, err := d.BigInt()
	if err != nil {
		return false
	}
	return big.Sign() > 0
}
