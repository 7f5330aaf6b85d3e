package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// earthRadiusKm converts a radius in kilometers to the radians that
// $centerSphere expects.
const earthRadiusKm = 6378.1

type SearchRepository struct {
	collection *mongo.Collection
	logger     logger.Logger
}

func NewSearchRepository(db *mongo.Database, log logger.Logger) *SearchRepository {
	return &SearchRepository{collection: db.Collection(listingsCollection), logger: log}
}

// textSearchPhrase tokenizes the query on whitespace and quotes every token,
// which makes the $text operator AND the terms instead of ORing them.
func textSearchPhrase(query string) string {
	tokens := strings.Fields(query)
	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		quoted = append(quoted, `"`+tok+`"`)
	}
	return strings.Join(quoted, " ")
}

// searchMatch renders the filter part of an advanced-search query. The geo
// clause always uses $centerSphere here so the same document works for both
// the count query and non-distance-sorted finds ($nearSphere is not allowed
// in countDocuments).
func searchMatch(q domain.SearchQuery, includeGeo bool) bson.D {
	p := &predicate{}
	if q.City != "" {
		p.eqFold("city", &q.City)
	}
	if q.District != "" {
		p.eqFold("district", &q.District)
	}
	if q.Status != "" {
		p.eq("status", string(q.Status))
	}
	p.gteFloat("price", q.MinPrice)
	p.lteFloat("price", q.MaxPrice)

	match := p.render()
	if q.Query != "" {
		match = append(bson.D{{Key: "$text", Value: bson.M{"$search": textSearchPhrase(q.Query)}}}, match...)
	}
	if includeGeo && q.RadiusKm != nil && q.Latitude != nil && q.Longitude != nil {
		match = append(match, bson.E{Key: "location", Value: bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{*q.Longitude, *q.Latitude},
					*q.RadiusKm / earthRadiusKm,
				},
			},
		}})
	}
	return match
}

// Search runs the advanced query. The count query mirrors the predicate
// without any ordering; the page query applies sort, skip and limit. A
// distance sort switches to a $geoNear pipeline because only the pipeline
// can both bound the radius in meters and order by distance.
func (r *SearchRepository) Search(ctx context.Context, q domain.SearchQuery) (*domain.ListingPage, error) {
	page := q.Page.Normalize()

	total, err := r.collection.CountDocuments(ctx, searchMatch(q, true))
	if err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	var docs []*listingDocument
	if q.SortBy == domain.SortByDistance {
		docs, err = r.searchByDistance(ctx, q, page)
	} else {
		docs, err = r.searchWithFind(ctx, q, page)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ListingPage{
		Items:      toDomainListings(docs),
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}

func (r *SearchRepository) searchWithFind(ctx context.Context, q domain.SearchQuery, page domain.Page) ([]*listingDocument, error) {
	opts := options.Find().SetSkip(page.Offset()).SetLimit(int64(page.Size))

	switch q.SortBy {
	case domain.SortByPrice:
		dir := 1
		if q.SortOrder == "desc" {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: "price", Value: dir}, {Key: "_id", Value: 1}})
	case domain.SortByRelevance:
		opts.SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	default:
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	}

	cursor, err := r.collection.Find(ctx, searchMatch(q, true), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to run search query: %w", err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return docs, nil
}

func (r *SearchRepository) searchByDistance(ctx context.Context, q domain.SearchQuery, page domain.Page) ([]*listingDocument, error) {
	geoNear := bson.M{
		"near": bson.M{
			"type":        "Point",
			"coordinates": bson.A{*q.Longitude, *q.Latitude},
		},
		"distanceField": "distance",
		"spherical":     true,
		"query":         searchMatch(q, false),
	}
	if q.RadiusKm != nil {
		geoNear["maxDistance"] = *q.RadiusKm * 1000 // km to meters
	}

	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: geoNear}},
		{{Key: "$skip", Value: page.Offset()}},
		{{Key: "$limit", Value: int64(page.Size)}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run distance search: %w", err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode distance search results: %w", err)
	}
	return docs, nil
}

// SuggestField returns distinct values of city or district containing the
// term, annotated with how many listings share the value, ranked by that
// count descending.
func (r *SearchRepository) SuggestField(ctx context.Context, field domain.SuggestionType, term string, limit int) ([]domain.Suggestion, error) {
	var column string
	switch field {
	case domain.SuggestionCity:
		column = "city"
	case domain.SuggestionDistrict:
		column = "district"
	default:
		return nil, fmt.Errorf("unsupported suggestion field %q", field)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{column: bson.M{
			"$regex":   regexp.QuoteMeta(term),
			"$options": "i",
		}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + column,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s suggestions: %w", column, err)
	}

	var rows []struct {
		Value string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s suggestions: %w", column, err)
	}

	suggestions := make([]domain.Suggestion, 0, len(rows))
	for _, row := range rows {
		if row.Value == "" {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			Type:         field,
			Value:        row.Value,
			ListingCount: row.Count,
		})
	}
	return suggestions, nil
}

// FeedPage computes the aggregated feed page inside the store while keeping
// the same page-boundary semantics as the in-memory concatenation: listings
// rank by variant feed order first, newest-created first within a variant.
func (r *SearchRepository) FeedPage(ctx context.Context, page domain.Page) (*domain.ListingPage, error) {
	page = page.Normalize()

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count feed listings: %w", err)
	}

	order := bson.A{}
	for _, t := range domain.AllListingTypes() {
		order = append(order, string(t))
	}

	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"type_rank": bson.M{"$indexOfArray": bson.A{order, "$listing_type"}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "type_rank", Value: 1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$skip", Value: page.Offset()}},
		{{Key: "$limit", Value: int64(page.Size)}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to page feed in store: %w", err)
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode feed page: %w", err)
	}

	return &domain.ListingPage{
		Items:      toDomainListings(docs),
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}
