package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// geoPoint is the GeoJSON representation indexed by the 2dsphere index.
// Coordinates are [longitude, latitude].
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type listingDocument struct {
	ID            int64                `bson:"_id"`
	Type          string               `bson:"listing_type"`
	Title         string               `bson:"title"`
	Description   string               `bson:"description"`
	Price         primitive.Decimal128 `bson:"price"`
	Currency      string               `bson:"currency"`
	Status        string               `bson:"status"`
	OfferType     string               `bson:"offer_type"`
	City          string               `bson:"city"`
	District      string               `bson:"district"`
	Location      *geoPoint            `bson:"location,omitempty"`
	CategoryID    string               `bson:"category_id"`
	CreatedBy     string               `bson:"created_by"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
	ViewCount     int64                `bson:"view_count"`
	FavoriteCount int64                `bson:"favorite_count"`

	RealEstate *realEstateDocument `bson:"real_estate,omitempty"`
	Vehicle    *vehicleDocument    `bson:"vehicle,omitempty"`
	Land       *landDocument       `bson:"land,omitempty"`
	Workplace  *workplaceDocument  `bson:"workplace,omitempty"`

	// distance is populated by $geoNear pipelines only.
	Distance *float64 `bson:"distance,omitempty"`
}

type realEstateDocument struct {
	Type        string `bson:"type"`
	RoomCount   string `bson:"room_count"`
	SquareMeter int    `bson:"square_meter"`
	BuildingAge int    `bson:"building_age"`
	Floor       int    `bson:"floor"`
	HeatingType string `bson:"heating_type"`
	Furnished   bool   `bson:"furnished"`
}

type vehicleDocument struct {
	Brand        string `bson:"brand"`
	Model        string `bson:"model"`
	Year         int    `bson:"year"`
	FuelType     string `bson:"fuel_type"`
	Transmission string `bson:"transmission"`
	Kilometer    int    `bson:"kilometer"`
	EngineVolume string `bson:"engine_volume"`

	Series           *string `bson:"series,omitempty"`
	VehicleStatus    *string `bson:"vehicle_status,omitempty"`
	BodyType         *string `bson:"body_type,omitempty"`
	EnginePower      *string `bson:"engine_power,omitempty"`
	TractionType     *string `bson:"traction_type,omitempty"`
	Color            *string `bson:"color,omitempty"`
	Warranty         *bool   `bson:"warranty,omitempty"`
	HeavyDamage      *bool   `bson:"heavy_damage,omitempty"`
	PlateNationality *string `bson:"plate_nationality,omitempty"`
	FromWho          *string `bson:"from_who,omitempty"`
	Exchange         *bool   `bson:"exchange,omitempty"`
}

type landDocument struct {
	LandType     string `bson:"land_type"`
	SquareMeter  int    `bson:"square_meter"`
	ZoningStatus string `bson:"zoning_status"`
	ParcelNumber string `bson:"parcel_number"`
	IslandNumber string `bson:"island_number"`
}

type workplaceDocument struct {
	WorkplaceType string `bson:"workplace_type"`
	SquareMeter   int    `bson:"square_meter"`
	FloorCount    int    `bson:"floor_count"`
	Furnished     bool   `bson:"furnished"`

	Heating           *string `bson:"heating,omitempty"`
	BuildingAge       *int    `bson:"building_age,omitempty"`
	Dues              *int    `bson:"dues,omitempty"`
	CreditEligibility *bool   `bson:"credit_eligibility,omitempty"`
	DeedStatus        *string `bson:"deed_status,omitempty"`
	ListingFrom       *string `bson:"listing_from,omitempty"`
	Exchange          *bool   `bson:"exchange,omitempty"`
}

type categoryDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Slug   string             `bson:"slug"`
	Active bool               `bson:"active"`
}

func toListingDocument(l *domain.Listing) *listingDocument {
	doc := &listingDocument{
		ID:            l.ID,
		Type:          string(l.Type),
		Title:         l.Title,
		Description:   l.Description,
		Price:         l.Price,
		Currency:      string(l.Currency),
		Status:        string(l.Status),
		OfferType:     string(l.OfferType),
		City:          l.City,
		District:      l.District,
		CategoryID:    l.CategoryID,
		CreatedBy:     l.CreatedBy,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		ViewCount:     l.ViewCount,
		FavoriteCount: l.FavoriteCount,
	}
	if l.Latitude != nil && l.Longitude != nil {
		doc.Location = &geoPoint{Type: "Point", Coordinates: []float64{*l.Longitude, *l.Latitude}}
	}
	if l.RealEstate != nil {
		doc.RealEstate = &realEstateDocument{
			Type:        string(l.RealEstate.Type),
			RoomCount:   l.RealEstate.RoomCount,
			SquareMeter: l.RealEstate.SquareMeter,
			BuildingAge: l.RealEstate.BuildingAge,
			Floor:       l.RealEstate.Floor,
			HeatingType: string(l.RealEstate.HeatingType),
			Furnished:   l.RealEstate.Furnished,
		}
	}
	if l.Vehicle != nil {
		doc.Vehicle = &vehicleDocument{
			Brand:            l.Vehicle.Brand,
			Model:            l.Vehicle.Model,
			Year:             l.Vehicle.Year,
			FuelType:         string(l.Vehicle.FuelType),
			Transmission:     string(l.Vehicle.Transmission),
			Kilometer:        l.Vehicle.Kilometer,
			EngineVolume:     l.Vehicle.EngineVolume,
			Series:           l.Vehicle.Series,
			VehicleStatus:    l.Vehicle.VehicleStatus,
			BodyType:         l.Vehicle.BodyType,
			EnginePower:      l.Vehicle.EnginePower,
			TractionType:     l.Vehicle.TractionType,
			Color:            l.Vehicle.Color,
			Warranty:         l.Vehicle.Warranty,
			HeavyDamage:      l.Vehicle.HeavyDamage,
			PlateNationality: l.Vehicle.PlateNationality,
			FromWho:          l.Vehicle.FromWho,
			Exchange:         l.Vehicle.Exchange,
		}
	}
	if l.Land != nil {
		doc.Land = &landDocument{
			LandType:     l.Land.LandType,
			SquareMeter:  l.Land.SquareMeter,
			ZoningStatus: l.Land.ZoningStatus,
			ParcelNumber: l.Land.ParcelNumber,
			IslandNumber: l.Land.IslandNumber,
		}
	}
	if l.Workplace != nil {
		doc.Workplace = &workplaceDocument{
			WorkplaceType:     l.Workplace.WorkplaceType,
			SquareMeter:       l.Workplace.SquareMeter,
			FloorCount:        l.Workplace.FloorCount,
			Furnished:         l.Workplace.Furnished,
			Heating:           l.Workplace.Heating,
			BuildingAge:       l.Workplace.BuildingAge,
			Dues:              l.Workplace.Dues,
			CreditEligibility: l.Workplace.CreditEligibility,
			DeedStatus:        l.Workplace.DeedStatus,
			ListingFrom:       l.Workplace.ListingFrom,
			Exchange:          l.Workplace.Exchange,
		}
	}
	return doc
}

func toDomainListing(d *listingDocument) *domain.Listing {
	if d == nil {
		return nil
	}
	l := &domain.Listing{
		ID:            d.ID,
		Type:          domain.ListingType(d.Type),
		Title:         d.Title,
		Description:   d.Description,
		Price:         d.Price,
		Currency:      domain.Currency(d.Currency),
		Status:        domain.ListingStatus(d.Status),
		OfferType:     domain.OfferType(d.OfferType),
		City:          d.City,
		District:      d.District,
		CategoryID:    d.CategoryID,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		ViewCount:     d.ViewCount,
		FavoriteCount: d.FavoriteCount,
	}
	if d.Location != nil && len(d.Location.Coordinates) == 2 {
		lng := d.Location.Coordinates[0]
		lat := d.Location.Coordinates[1]
		l.Longitude = &lng
		l.Latitude = &lat
	}
	if d.RealEstate != nil {
		l.RealEstate = &domain.RealEstateDetails{
			Type:        domain.RealEstateType(d.RealEstate.Type),
			RoomCount:   d.RealEstate.RoomCount,
			SquareMeter: d.RealEstate.SquareMeter,
			BuildingAge: d.RealEstate.BuildingAge,
			Floor:       d.RealEstate.Floor,
			HeatingType: domain.HeatingType(d.RealEstate.HeatingType),
			Furnished:   d.RealEstate.Furnished,
		}
	}
	if d.Vehicle != nil {
		l.Vehicle = &domain.VehicleDetails{
			Brand:            d.Vehicle.Brand,
			Model:            d.Vehicle.Model,
			Year:             d.Vehicle.Year,
			FuelType:         domain.FuelType(d.Vehicle.FuelType),
			Transmission:     domain.Transmission(d.Vehicle.Transmission),
			Kilometer:        d.Vehicle.Kilometer,
			EngineVolume:     d.Vehicle.EngineVolume,
			Series:           d.Vehicle.Series,
			VehicleStatus:    d.Vehicle.VehicleStatus,
			BodyType:         d.Vehicle.BodyType,
			EnginePower:      d.Vehicle.EnginePower,
			TractionType:     d.Vehicle.TractionType,
			Color:            d.Vehicle.Color,
			Warranty:         d.Vehicle.Warranty,
			HeavyDamage:      d.Vehicle.HeavyDamage,
			PlateNationality: d.Vehicle.PlateNationality,
			FromWho:          d.Vehicle.FromWho,
			Exchange:         d.Vehicle.Exchange,
		}
	}
	if d.Land != nil {
		l.Land = &domain.LandDetails{
			LandType:     d.Land.LandType,
			SquareMeter:  d.Land.SquareMeter,
			ZoningStatus: d.Land.ZoningStatus,
			ParcelNumber: d.Land.ParcelNumber,
			IslandNumber: d.Land.IslandNumber,
		}
	}
	if d.Workplace != nil {
		l.Workplace = &domain.WorkplaceDetails{
			WorkplaceType:     d.Workplace.WorkplaceType,
			SquareMeter:       d.Workplace.SquareMeter,
			FloorCount:        d.Workplace.FloorCount,
			Furnished:         d.Workplace.Furnished,
			Heating:           d.Workplace.Heating,
			BuildingAge:       d.Workplace.BuildingAge,
			Dues:              d.Workplace.Dues,
			CreditEligibility: d.Workplace.CreditEligibility,
			DeedStatus:        d.Workplace.DeedStatus,
			ListingFrom:       d.Workplace.ListingFrom,
			Exchange:          d.Workplace.Exchange,
		}
	}
	return l
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}

func toDomainCategory(d *categoryDocument) *domain.Category {
	if d == nil {
		return nil
	}
	return &domain.Category{
		ID:     d.ID.Hex(),
		Name:   d.Name,
		Slug:   d.Slug,
		Active: d.Active,
	}
}
