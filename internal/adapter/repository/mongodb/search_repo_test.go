package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

func TestSearchMatch_TextClauseLeads(t *testing.T) {
	match := searchMatch(domain.SearchQuery{Query: "deniz manzara", City: "Izmir"}, true)

	assert.Equal(t, "$text", match[0].Key)
	text := match[0].Value.(bson.M)
	assert.Equal(t, `"deniz" "manzara"`, text["$search"])
	assert.Equal(t, "city", match[1].Key)
}

func TestSearchMatch_GeoClause(t *testing.T) {
	lat, lng, radius := 41.0082, 28.9784, 5.0
	q := domain.SearchQuery{Latitude: &lat, Longitude: &lng, RadiusKm: &radius}

	with := searchMatch(q, true)
	assert.Len(t, with, 1)
	assert.Equal(t, "location", with[0].Key)
	within := with[0].Value.(bson.M)["$geoWithin"].(bson.M)
	sphere := within["$centerSphere"].(bson.A)
	center := sphere[0].(bson.A)
	assert.Equal(t, lng, center[0])
	assert.Equal(t, lat, center[1])
	assert.InDelta(t, radius/earthRadiusKm, sphere[1].(float64), 1e-12)

	// Distance-sorted finds go through $geoNear; the radius must not be
	// applied twice.
	without := searchMatch(q, false)
	assert.Empty(t, without)
}

func TestSearchMatch_EmptyQueryMatchesEverything(t *testing.T) {
	match := searchMatch(domain.SearchQuery{}, true)
	assert.Empty(t, match)
}
