package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

type ListingRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
	logger     logger.Logger
}

func NewListingRepository(db *mongo.Database, log logger.Logger) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection(listingsCollection),
		counters:   db.Collection(countersCollection),
		logger:     log,
	}
}

// nextListingID draws the next id from the single shared sequence. Ids are
// unique across all four variants because every variant draws from this one
// counter document.
func (r *ListingRepository) nextListingID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "listing_id"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to advance listing id sequence: %w", err)
	}
	return counter.Seq, nil
}

// Create assigns the sequence id and timestamps, then inserts the listing
// together with its owner reference as a single document. A single insert is
// atomic, which covers the create-with-owner requirement.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	id, err := r.nextListingID(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	listing.ID = id
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, toListingDocument(listing)); err != nil {
		return fmt.Errorf("failed to insert listing %d: %w", id, err)
	}
	return nil
}

// Update applies a partial patch: only non-nil patch fields reach the $set
// document, everything else keeps its stored value.
func (r *ListingRepository) Update(ctx context.Context, id int64, patch domain.ListingPatch) (*domain.Listing, error) {
	set := patchSet(patch)
	set = append(set, bson.E{Key: "updated_at", Value: time.Now().UTC()})
	if patch.Latitude != nil && patch.Longitude != nil {
		set = append(set, bson.E{Key: "location", Value: geoPoint{
			Type:        "Point",
			Coordinates: []float64{*patch.Longitude, *patch.Latitude},
		}})
	}
	update := bson.M{"$set": set}

	var doc listingDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("listing %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update listing %d: %w", id, err)
	}
	return toDomainListing(&doc), nil
}

func patchSet(patch domain.ListingPatch) bson.D {
	set := bson.D{}
	add := func(field string, v interface{}) {
		set = append(set, bson.E{Key: field, Value: v})
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Currency != nil {
		add("currency", string(*patch.Currency))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.OfferType != nil {
		add("offer_type", string(*patch.OfferType))
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.District != nil {
		add("district", *patch.District)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}

	if p := patch.RealEstate; p != nil {
		if p.Type != nil {
			add("real_estate.type", string(*p.Type))
		}
		if p.RoomCount != nil {
			add("real_estate.room_count", *p.RoomCount)
		}
		if p.SquareMeter != nil {
			add("real_estate.square_meter", *p.SquareMeter)
		}
		if p.BuildingAge != nil {
			add("real_estate.building_age", *p.BuildingAge)
		}
		if p.Floor != nil {
			add("real_estate.floor", *p.Floor)
		}
		if p.HeatingType != nil {
			add("real_estate.heating_type", string(*p.HeatingType))
		}
		if p.Furnished != nil {
			add("real_estate.furnished", *p.Furnished)
		}
	}

	if p := patch.Vehicle; p != nil {
		if p.Brand != nil {
			add("vehicle.brand", *p.Brand)
		}
		if p.Model != nil {
			add("vehicle.model", *p.Model)
		}
		if p.Year != nil {
			add("vehicle.year", *p.Year)
		}
		if p.FuelType != nil {
			add("vehicle.fuel_type", string(*p.FuelType))
		}
		if p.Transmission != nil {
			add("vehicle.transmission", string(*p.Transmission))
		}
		if p.Kilometer != nil {
			add("vehicle.kilometer", *p.Kilometer)
		}
		if p.EngineVolume != nil {
			add("vehicle.engine_volume", *p.EngineVolume)
		}
		if p.Series != nil {
			add("vehicle.series", *p.Series)
		}
		if p.VehicleStatus != nil {
			add("vehicle.vehicle_status", *p.VehicleStatus)
		}
		if p.BodyType != nil {
			add("vehicle.body_type", *p.BodyType)
		}
		if p.EnginePower != nil {
			add("vehicle.engine_power", *p.EnginePower)
		}
		if p.TractionType != nil {
			add("vehicle.traction_type", *p.TractionType)
		}
		if p.Color != nil {
			add("vehicle.color", *p.Color)
		}
		if p.Warranty != nil {
			add("vehicle.warranty", *p.Warranty)
		}
		if p.HeavyDamage != nil {
			add("vehicle.heavy_damage", *p.HeavyDamage)
		}
		if p.PlateNationality != nil {
			add("vehicle.plate_nationality", *p.PlateNationality)
		}
		if p.FromWho != nil {
			add("vehicle.from_who", *p.FromWho)
		}
		if p.Exchange != nil {
			add("vehicle.exchange", *p.Exchange)
		}
	}

	if p := patch.Land; p != nil {
		if p.LandType != nil {
			add("land.land_type", *p.LandType)
		}
		if p.SquareMeter != nil {
			add("land.square_meter", *p.SquareMeter)
		}
		if p.ZoningStatus != nil {
			add("land.zoning_status", *p.ZoningStatus)
		}
		if p.ParcelNumber != nil {
			add("land.parcel_number", *p.ParcelNumber)
		}
		if p.IslandNumber != nil {
			add("land.island_number", *p.IslandNumber)
		}
	}

	if p := patch.Workplace; p != nil {
		if p.WorkplaceType != nil {
			add("workplace.workplace_type", *p.WorkplaceType)
		}
		if p.SquareMeter != nil {
			add("workplace.square_meter", *p.SquareMeter)
		}
		if p.FloorCount != nil {
			add("workplace.floor_count", *p.FloorCount)
		}
		if p.Furnished != nil {
			add("workplace.furnished", *p.Furnished)
		}
		if p.Heating != nil {
			add("workplace.heating", *p.Heating)
		}
		if p.BuildingAge != nil {
			add("workplace.building_age", *p.BuildingAge)
		}
		if p.Dues != nil {
			add("workplace.dues", *p.Dues)
		}
		if p.CreditEligibility != nil {
			add("workplace.credit_eligibility", *p.CreditEligibility)
		}
		if p.DeedStatus != nil {
			add("workplace.deed_status", *p.DeedStatus)
		}
		if p.ListingFrom != nil {
			add("workplace.listing_from", *p.ListingFrom)
		}
		if p.Exchange != nil {
			add("workplace.exchange", *p.Exchange)
		}
	}

	return set
}

// Delete removes the row without any authorization check; callers must have
// authorized the operation already.
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("listing %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var doc listingDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("listing %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find listing %d: %w", id, err)
	}
	return toDomainListing(&doc), nil
}

func (r *ListingRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find listings by ids: %w", err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return toDomainListings(docs), nil
}

func (r *ListingRepository) FindAllByType(ctx context.Context, t domain.ListingType) ([]*domain.Listing, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"listing_type": string(t)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s listings: %w", t, err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s listings: %w", t, err)
	}
	return toDomainListings(docs), nil
}

func (r *ListingRepository) FindByOwner(ctx context.Context, userID string) ([]*domain.Listing, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"created_by": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find listings of user %s: %w", userID, err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode listings of user %s: %w", userID, err)
	}
	return toDomainListings(docs), nil
}

// FindByFilter executes the filter and the pagination as a single query: the
// rendered predicate drives both the count and the page fetch, so the store
// is never re-scanned for paging.
func (r *ListingRepository) FindByFilter(ctx context.Context, filter domain.Filter, page domain.Page) (*domain.ListingPage, error) {
	page = page.Normalize()

	pred, err := filterPredicate(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	query := pred.render()

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count filtered listings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().
			SetSort(sortSpec(page)).
			SetSkip(page.Offset()).
			SetLimit(int64(page.Size)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find filtered listings: %w", err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode filtered listings: %w", err)
	}

	return &domain.ListingPage{
		Items:      toDomainListings(docs),
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}

func (r *ListingRepository) CountByType(ctx context.Context, t domain.ListingType) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"listing_type": string(t)})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s listings: %w", t, err)
	}
	return count, nil
}

// IncrementViewCount bumps the counter in place. Concurrent detail views
// never lose an increment because the store applies $inc atomically.
func (r *ListingRepository) IncrementViewCount(ctx context.Context, id int64) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"view_count": int64(1)}})
	if err != nil {
		return fmt.Errorf("failed to increment view count of listing %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("listing %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
