package mongodb

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

var testDB *mongo.Database

// TestMain starts a throwaway MongoDB container. When Docker is not
// available the integration tests are skipped, not failed.
func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("Docker is not available, skipping MongoDB integration tests: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "6.0",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start MongoDB container: %s", err)
	}

	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	var client *mongo.Client
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var err error
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		return client.Ping(ctx, nil)
	}); err != nil {
		log.Fatalf("Could not connect to MongoDB container: %s", err)
	}

	testDB = client.Database("classifieds_test")
	if err := EnsureIndexes(context.Background(), testDB); err != nil {
		log.Fatalf("Could not create indexes: %s", err)
	}

	code := m.Run()

	_ = client.Disconnect(context.Background())
	_ = pool.Purge(resource)
	os.Exit(code)
}

func requireDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testDB == nil {
		t.Skip("MongoDB container is not available")
	}
	t.Cleanup(func() {
		_, _ = testDB.Collection(listingsCollection).DeleteMany(context.Background(), bson.D{})
		_, _ = testDB.Collection(countersCollection).DeleteMany(context.Background(), bson.D{})
	})
	return testDB
}

func mustDecimal(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func vehicleFixture(t *testing.T, title, city string, lat, lng float64) *domain.Listing {
	t.Helper()
	return &domain.Listing{
		Type:       domain.TypeVehicle,
		Title:      title,
		Price:      mustDecimal(t, "750000"),
		Currency:   domain.CurrencyTRY,
		Status:     domain.StatusActive,
		OfferType:  domain.OfferForSale,
		City:       city,
		District:   "Merkez",
		Latitude:   &lat,
		Longitude:  &lng,
		CategoryID: "cat-vehicle",
		CreatedBy:  "user-1",
		Vehicle: &domain.VehicleDetails{
			Brand:        "Renault",
			Model:        "Clio",
			Year:         2019,
			FuelType:     domain.FuelGasoline,
			Transmission: domain.TransmissionManual,
			Kilometer:    60000,
			EngineVolume: "1.3",
		},
	}
}

func TestListingRepository_RoundTrip(t *testing.T) {
	db := requireDB(t)
	repo := NewListingRepository(db, logger.NewNop())
	ctx := context.Background()

	listing := vehicleFixture(t, "Clean Clio", "Ankara", 39.92, 32.85)
	require.NoError(t, repo.Create(ctx, listing))
	assert.NotZero(t, listing.ID)

	got, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeVehicle, got.Type)
	assert.Equal(t, "Clean Clio", got.Title)
	assert.Equal(t, "750000", got.Price.String())
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "Renault", got.Vehicle.Brand)
	assert.Nil(t, got.RealEstate)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 39.92, *got.Latitude, 1e-9)
}

func TestListingRepository_IDsUniqueAcrossTypes(t *testing.T) {
	db := requireDB(t)
	repo := NewListingRepository(db, logger.NewNop())
	ctx := context.Background()

	vehicle := vehicleFixture(t, "Vehicle", "Ankara", 39.92, 32.85)
	require.NoError(t, repo.Create(ctx, vehicle))

	land := &domain.Listing{
		Type:       domain.TypeLand,
		Title:      "Field with a view",
		Price:      mustDecimal(t, "500000"),
		Currency:   domain.CurrencyTRY,
		Status:     domain.StatusActive,
		OfferType:  domain.OfferForSale,
		City:       "Bursa",
		CategoryID: "cat-land",
		CreatedBy:  "user-2",
		Land:       &domain.LandDetails{LandType: "FIELD", SquareMeter: 4000},
	}
	require.NoError(t, repo.Create(ctx, land))

	assert.NotEqual(t, vehicle.ID, land.ID)
	assert.Greater(t, land.ID, vehicle.ID)
}

func TestListingRepository_FindByFilter_PriceRangeAndCity(t *testing.T) {
	db := requireDB(t)
	repo := NewListingRepository(db, logger.NewNop())
	ctx := context.Background()

	prices := map[string]string{"cheap": "400000", "mid": "750000", "pricey": "1200000"}
	for title, price := range prices {
		l := vehicleFixture(t, title, "Istanbul", 41.0, 29.0)
		l.Price = mustDecimal(t, price)
		require.NoError(t, repo.Create(ctx, l))
	}
	outOfTown := vehicleFixture(t, "mid elsewhere", "Ankara", 39.92, 32.85)
	require.NoError(t, repo.Create(ctx, outOfTown))

	city := "istanbul" // lowercased on purpose, matching is case-insensitive
	minPrice, maxPrice := 500000.0, 1000000.0
	page, err := repo.FindByFilter(ctx, domain.VehicleFilter{
		ListingFilter: domain.ListingFilter{
			City:     &city,
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
		},
	}, domain.Page{Size: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mid", page.Items[0].Title)
}

func TestListingRepository_PartialPatchLeavesOtherFieldsUntouched(t *testing.T) {
	db := requireDB(t)
	repo := NewListingRepository(db, logger.NewNop())
	ctx := context.Background()

	listing := vehicleFixture(t, "Before", "Ankara", 39.92, 32.85)
	require.NoError(t, repo.Create(ctx, listing))

	kilometer := 61000
	updated, err := repo.Update(ctx, listing.ID, domain.ListingPatch{
		Vehicle: &domain.VehiclePatch{Kilometer: &kilometer},
	})
	require.NoError(t, err)

	assert.Equal(t, "Before", updated.Title)
	assert.Equal(t, 61000, updated.Vehicle.Kilometer)
	assert.Equal(t, "Renault", updated.Vehicle.Brand)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestSearchRepository_GeoRadius(t *testing.T) {
	db := requireDB(t)
	listingRepo := NewListingRepository(db, logger.NewNop())
	searchRepo := NewSearchRepository(db, logger.NewNop())
	ctx := context.Background()

	// Roughly 1km and 5km east of the center point at this latitude.
	center := vehicleFixture(t, "at center", "Istanbul", 41.0, 29.0)
	near := vehicleFixture(t, "one km away", "Istanbul", 41.0, 29.012)
	far := vehicleFixture(t, "five km away", "Istanbul", 41.0, 29.06)
	for _, l := range []*domain.Listing{center, near, far} {
		require.NoError(t, listingRepo.Create(ctx, l))
	}

	lat, lng := 41.0, 29.0
	radius := 2.0
	page, err := searchRepo.Search(ctx, domain.SearchQuery{
		Latitude: &lat, Longitude: &lng, RadiusKm: &radius,
		SortBy: domain.SortByDistance,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Items, 2)
	// Distance sort puts the center listing first.
	assert.Equal(t, "at center", page.Items[0].Title)

	radius = 8.0
	page, err = searchRepo.Search(ctx, domain.SearchQuery{
		Latitude: &lat, Longitude: &lng, RadiusKm: &radius,
		SortBy: domain.SortByDistance,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
}

func TestSearchRepository_TextSearchRequiresAllTerms(t *testing.T) {
	db := requireDB(t)
	listingRepo := NewListingRepository(db, logger.NewNop())
	searchRepo := NewSearchRepository(db, logger.NewNop())
	ctx := context.Background()

	both := vehicleFixture(t, "temiz aile arabasi", "Istanbul", 41.0, 29.0)
	one := vehicleFixture(t, "temiz motor", "Istanbul", 41.0, 29.0)
	for _, l := range []*domain.Listing{both, one} {
		require.NoError(t, listingRepo.Create(ctx, l))
	}

	page, err := searchRepo.Search(ctx, domain.SearchQuery{Query: "temiz aile"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "temiz aile arabasi", page.Items[0].Title)
}

func TestSearchRepository_SuggestField(t *testing.T) {
	db := requireDB(t)
	listingRepo := NewListingRepository(db, logger.NewNop())
	searchRepo := NewSearchRepository(db, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, listingRepo.Create(ctx, vehicleFixture(t, fmt.Sprintf("ist %d", i), "Istanbul", 41.0, 29.0)))
	}
	require.NoError(t, listingRepo.Create(ctx, vehicleFixture(t, "isp", "Isparta", 37.76, 30.55)))

	suggestions, err := searchRepo.SuggestField(ctx, domain.SuggestionCity, "is", 5)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	// Most frequent value first.
	assert.Equal(t, "Istanbul", suggestions[0].Value)
	assert.Equal(t, int64(3), suggestions[0].ListingCount)
	assert.Equal(t, "Isparta", suggestions[1].Value)
}

func TestSearchRepository_FeedPageOrdersByVariant(t *testing.T) {
	db := requireDB(t)
	listingRepo := NewListingRepository(db, logger.NewNop())
	searchRepo := NewSearchRepository(db, logger.NewNop())
	ctx := context.Background()

	land := &domain.Listing{
		Type:       domain.TypeLand,
		Title:      "Land first inserted",
		Price:      mustDecimal(t, "300000"),
		Currency:   domain.CurrencyTRY,
		Status:     domain.StatusActive,
		OfferType:  domain.OfferForSale,
		City:       "Bursa",
		CategoryID: "cat-land",
		CreatedBy:  "user-2",
		Land:       &domain.LandDetails{LandType: "FIELD", SquareMeter: 900},
	}
	require.NoError(t, listingRepo.Create(ctx, land))
	require.NoError(t, listingRepo.Create(ctx, vehicleFixture(t, "Vehicle second", "Ankara", 39.92, 32.85)))

	page, err := searchRepo.FeedPage(ctx, domain.Page{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Items, 2)
	// Vehicles rank before lands regardless of insertion order.
	assert.Equal(t, domain.TypeVehicle, page.Items[0].Type)
	assert.Equal(t, domain.TypeLand, page.Items[1].Type)
}
