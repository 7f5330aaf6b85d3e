package mongodb

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

type operator string

const (
	opEq     operator = "eq"
	opEqFold operator = "eqFold"
	opGte    operator = "gte"
	opLte    operator = "lte"
)

type condition struct {
	field string
	op    operator
	value interface{}
}

// predicate is an ordered list of (field, operator, value) conditions
// assembled only from non-nil filter inputs. It renders into a parameterized
// bson document; filter values never reach the query as raw strings.
type predicate struct {
	conds []condition
}

func (p *predicate) add(field string, op operator, value interface{}) {
	p.conds = append(p.conds, condition{field: field, op: op, value: value})
}

// eq appends an exact-match condition. Callers pass dereferenced values and
// guard nil themselves when the source is a typed pointer.
func (p *predicate) eq(field string, value interface{}) {
	p.add(field, opEq, value)
}

// eqFold appends a case-insensitive exact match for an optional string.
func (p *predicate) eqFold(field string, value *string) {
	if value == nil {
		return
	}
	p.add(field, opEqFold, *value)
}

func (p *predicate) eqString(field string, value *string) {
	if value == nil {
		return
	}
	p.add(field, opEq, *value)
}

func (p *predicate) eqBool(field string, value *bool) {
	if value == nil {
		return
	}
	p.add(field, opEq, *value)
}

func (p *predicate) gteInt(field string, value *int) {
	if value == nil {
		return
	}
	p.add(field, opGte, *value)
}

func (p *predicate) lteInt(field string, value *int) {
	if value == nil {
		return
	}
	p.add(field, opLte, *value)
}

func (p *predicate) gteFloat(field string, value *float64) {
	if value == nil {
		return
	}
	p.add(field, opGte, *value)
}

func (p *predicate) lteFloat(field string, value *float64) {
	if value == nil {
		return
	}
	p.add(field, opLte, *value)
}

func (p *predicate) empty() bool {
	return len(p.conds) == 0
}

// render produces the bson filter document. Range conditions on the same
// field merge into one sub-document so $gte and $lte apply together.
func (p *predicate) render() bson.D {
	out := bson.D{}
	index := map[string]int{}

	for _, c := range p.conds {
		var clause interface{}
		switch c.op {
		case opEq:
			clause = c.value
		case opEqFold:
			s, _ := c.value.(string)
			clause = bson.M{"$regex": "^" + regexp.QuoteMeta(s) + "$", "$options": "i"}
		case opGte:
			clause = bson.M{"$gte": c.value}
		case opLte:
			clause = bson.M{"$lte": c.value}
		}

		if i, ok := index[c.field]; ok {
			existing, isRange := out[i].Value.(bson.M)
			next, nextRange := clause.(bson.M)
			if isRange && nextRange {
				for k, v := range next {
					existing[k] = v
				}
				continue
			}
		}
		index[c.field] = len(out)
		out = append(out, bson.E{Key: c.field, Value: clause})
	}
	return out
}

// filterPredicate assembles the predicate for a per-category filter. The
// discriminator is always the first condition; everything after comes only
// from the filter's non-nil fields, so an empty filter behaves exactly like
// find-all for the category.
func filterPredicate(f domain.Filter) (*predicate, error) {
	p := &predicate{}
	p.eq("listing_type", string(f.ListingType()))

	switch ft := f.(type) {
	case domain.RealEstateFilter:
		commonPredicate(p, ft.ListingFilter)
		if ft.Type != nil {
			p.eq("real_estate.type", string(*ft.Type))
		}
		p.eqFold("real_estate.room_count", ft.RoomCount)
		p.gteInt("real_estate.square_meter", ft.MinSquareMeter)
		p.lteInt("real_estate.square_meter", ft.MaxSquareMeter)
		p.gteInt("real_estate.building_age", ft.MinBuildingAge)
		p.lteInt("real_estate.building_age", ft.MaxBuildingAge)
		p.gteInt("real_estate.floor", ft.MinFloor)
		p.lteInt("real_estate.floor", ft.MaxFloor)
		if ft.HeatingType != nil {
			p.eq("real_estate.heating_type", string(*ft.HeatingType))
		}
		p.eqBool("real_estate.furnished", ft.Furnished)

	case domain.VehicleFilter:
		commonPredicate(p, ft.ListingFilter)
		p.eqFold("vehicle.brand", ft.Brand)
		p.eqFold("vehicle.model", ft.Model)
		p.gteInt("vehicle.year", ft.MinYear)
		p.lteInt("vehicle.year", ft.MaxYear)
		if ft.FuelType != nil {
			p.eq("vehicle.fuel_type", string(*ft.FuelType))
		}
		if ft.Transmission != nil {
			p.eq("vehicle.transmission", string(*ft.Transmission))
		}
		p.gteInt("vehicle.kilometer", ft.MinKilometer)
		p.lteInt("vehicle.kilometer", ft.MaxKilometer)

	case domain.LandFilter:
		commonPredicate(p, ft.ListingFilter)
		p.eqFold("land.land_type", ft.LandType)
		p.eqFold("land.zoning_status", ft.ZoningStatus)
		p.gteInt("land.square_meter", ft.MinSquareMeter)
		p.lteInt("land.square_meter", ft.MaxSquareMeter)

	case domain.WorkplaceFilter:
		commonPredicate(p, ft.ListingFilter)
		p.eqFold("workplace.workplace_type", ft.WorkplaceType)
		p.gteInt("workplace.square_meter", ft.MinSquareMeter)
		p.lteInt("workplace.square_meter", ft.MaxSquareMeter)
		p.gteInt("workplace.floor_count", ft.MinFloorCount)
		p.lteInt("workplace.floor_count", ft.MaxFloorCount)
		p.eqBool("workplace.furnished", ft.Furnished)

	default:
		return nil, fmt.Errorf("unsupported filter type %T", f)
	}

	return p, nil
}

func commonPredicate(p *predicate, f domain.ListingFilter) {
	p.eqFold("city", f.City)
	p.eqFold("district", f.District)
	p.eqString("category_id", f.CategoryID)
	if f.Status != nil {
		p.eq("status", string(*f.Status))
	}
	if f.OfferType != nil {
		p.eq("offer_type", string(*f.OfferType))
	}
	p.gteFloat("price", f.MinPrice)
	p.lteFloat("price", f.MaxPrice)
	p.eqString("created_by", f.CreatedBy)
}

var sortFields = map[string]string{
	"price":     "price",
	"date":      "created_at",
	"createdAt": "created_at",
	"year":      "vehicle.year",
	"kilometer": "vehicle.kilometer",
	"viewCount": "view_count",
}

// sortSpec maps a logical sort field to a bson sort document, defaulting to
// newest-created-first for unknown fields.
func sortSpec(page domain.Page) bson.D {
	field, ok := sortFields[page.SortBy]
	if !ok {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	dir := -1
	if page.SortOrder == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}
