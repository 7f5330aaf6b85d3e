package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// Query parameter parsers. Absent or empty parameters yield nil, so filter
// construction only ever sees the constraints the client actually sent.

func queryString(q url.Values, key string) *string {
	if v := q.Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(q url.Values, key string) *int {
	if v := q.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func queryFloat(q url.Values, key string) *float64 {
	if v := q.Get(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func queryBool(q url.Values, key string) *bool {
	if v := q.Get(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}

func parsePage(q url.Values) domain.Page {
	page := domain.Page{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if n := queryInt(q, "page"); n != nil {
		page.Number = *n
	}
	if n := queryInt(q, "size"); n != nil {
		page.Size = *n
	}
	return page.Normalize()
}

func parseCommonFilter(q url.Values) domain.ListingFilter {
	f := domain.ListingFilter{
		City:       queryString(q, "city"),
		District:   queryString(q, "district"),
		CategoryID: queryString(q, "categoryId"),
		MinPrice:   queryFloat(q, "minPrice"),
		MaxPrice:   queryFloat(q, "maxPrice"),
	}
	if v := q.Get("status"); v != "" {
		status := domain.ListingStatus(v)
		f.Status = &status
	}
	if v := q.Get("offerType"); v != "" {
		offer := domain.OfferType(v)
		f.OfferType = &offer
	}
	return f
}

func parseRealEstateFilter(q url.Values) domain.RealEstateFilter {
	f := domain.RealEstateFilter{
		ListingFilter:  parseCommonFilter(q),
		RoomCount:      queryString(q, "roomCount"),
		MinSquareMeter: queryInt(q, "minSquareMeter"),
		MaxSquareMeter: queryInt(q, "maxSquareMeter"),
		MinBuildingAge: queryInt(q, "minBuildingAge"),
		MaxBuildingAge: queryInt(q, "maxBuildingAge"),
		MinFloor:       queryInt(q, "minFloor"),
		MaxFloor:       queryInt(q, "maxFloor"),
		Furnished:      queryBool(q, "furnished"),
	}
	if v := q.Get("type"); v != "" {
		t := domain.RealEstateType(v)
		f.Type = &t
	}
	if v := q.Get("heatingType"); v != "" {
		h := domain.HeatingType(v)
		f.HeatingType = &h
	}
	return f
}

func parseVehicleFilter(q url.Values) domain.VehicleFilter {
	f := domain.VehicleFilter{
		ListingFilter: parseCommonFilter(q),
		Brand:         queryString(q, "brand"),
		Model:         queryString(q, "model"),
		MinYear:       queryInt(q, "minYear"),
		MaxYear:       queryInt(q, "maxYear"),
		MinKilometer:  queryInt(q, "minKilometer"),
		MaxKilometer:  queryInt(q, "maxKilometer"),
	}
	if v := q.Get("fuelType"); v != "" {
		fuel := domain.FuelType(v)
		f.FuelType = &fuel
	}
	if v := q.Get("transmission"); v != "" {
		tr := domain.Transmission(v)
		f.Transmission = &tr
	}
	return f
}

func parseLandFilter(q url.Values) domain.LandFilter {
	return domain.LandFilter{
		ListingFilter:  parseCommonFilter(q),
		LandType:       queryString(q, "landType"),
		ZoningStatus:   queryString(q, "zoningStatus"),
		MinSquareMeter: queryInt(q, "minSquareMeter"),
		MaxSquareMeter: queryInt(q, "maxSquareMeter"),
	}
}

func parseWorkplaceFilter(q url.Values) domain.WorkplaceFilter {
	return domain.WorkplaceFilter{
		ListingFilter:  parseCommonFilter(q),
		WorkplaceType:  queryString(q, "workplaceType"),
		MinSquareMeter: queryInt(q, "minSquareMeter"),
		MaxSquareMeter: queryInt(q, "maxSquareMeter"),
		MinFloorCount:  queryInt(q, "minFloorCount"),
		MaxFloorCount:  queryInt(q, "maxFloorCount"),
		Furnished:      queryBool(q, "furnished"),
	}
}

func parseSearchQuery(r *http.Request) domain.SearchQuery {
	q := r.URL.Query()
	search := domain.SearchQuery{
		Query:     q.Get("q"),
		City:      q.Get("city"),
		District:  q.Get("district"),
		Status:    domain.ListingStatus(q.Get("status")),
		MinPrice:  queryFloat(q, "minPrice"),
		MaxPrice:  queryFloat(q, "maxPrice"),
		Latitude:  queryFloat(q, "lat"),
		Longitude: queryFloat(q, "lng"),
		RadiusKm:  queryFloat(q, "radius"),
		SortBy:    domain.SearchSort(q.Get("sortBy")),
		SortOrder: q.Get("sortOrder"),
		Page:      parsePage(q),
	}
	return search
}
