package domain

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page describes pagination and ordering for a single store query. Page
// numbers are zero-based.
type Page struct {
	Number    int
	Size      int
	SortBy    string
	SortOrder string
}

// Normalize applies defaults and caps so an arbitrary client-supplied page
// is always safe to execute.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
	return p
}

func (p Page) Offset() int64 {
	return int64(p.Number) * int64(p.Size)
}

// ListingPage is a paged result set produced by a single filter+page query.
type ListingPage struct {
	Items      []*Listing
	TotalCount int64
	Number     int
	Size       int
}

func (p *ListingPage) TotalPages() int64 {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalCount + int64(p.Size) - 1) / int64(p.Size)
}

// Filter is implemented by the four per-category filter types. Every field
// of a filter is optional; nil means "no constraint". The store renders a
// filter into the conjunction of only its non-nil constraints.
type Filter interface {
	ListingType() ListingType
}

// ListingFilter holds the constraints shared by every category.
type ListingFilter struct {
	City       *string
	District   *string
	CategoryID *string
	Status     *ListingStatus
	OfferType  *OfferType
	MinPrice   *float64
	MaxPrice   *float64
	CreatedBy  *string
}

type RealEstateFilter struct {
	ListingFilter
	Type           *RealEstateType
	RoomCount      *string
	MinSquareMeter *int
	MaxSquareMeter *int
	MinBuildingAge *int
	MaxBuildingAge *int
	MinFloor       *int
	MaxFloor       *int
	HeatingType    *HeatingType
	Furnished      *bool
}

func (RealEstateFilter) ListingType() ListingType { return TypeRealEstate }

type VehicleFilter struct {
	ListingFilter
	Brand        *string
	Model        *string
	MinYear      *int
	MaxYear      *int
	FuelType     *FuelType
	Transmission *Transmission
	MinKilometer *int
	MaxKilometer *int
}

func (VehicleFilter) ListingType() ListingType { return TypeVehicle }

type LandFilter struct {
	ListingFilter
	LandType       *string
	ZoningStatus   *string
	MinSquareMeter *int
	MaxSquareMeter *int
}

func (LandFilter) ListingType() ListingType { return TypeLand }

type WorkplaceFilter struct {
	ListingFilter
	WorkplaceType  *string
	MinSquareMeter *int
	MaxSquareMeter *int
	MinFloorCount  *int
	MaxFloorCount  *int
	Furnished      *bool
}

func (WorkplaceFilter) ListingType() ListingType { return TypeWorkplace }
