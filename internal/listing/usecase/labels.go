package usecase

// displayLabels maps raw enum values to their display form, grouped by the
// enum domain they belong to.
var displayLabels = map[string]map[string]string{
	"status": {
		"ACTIVE":  "Active",
		"PASSIVE": "Passive",
		"SOLD":    "Sold",
		"EXPIRED": "Expired",
	},
	"offer_type": {
		"FOR_SALE": "For Sale",
		"FOR_RENT": "For Rent",
	},
	"real_estate_type": {
		"FLAT":           "Flat",
		"VILLA":          "Villa",
		"DETACHED_HOUSE": "Detached House",
		"RESIDENCE":      "Residence",
		"BUILDING":       "Building",
	},
	"heating_type": {
		"NATURAL_GAS":      "Natural Gas",
		"CENTRAL":          "Central",
		"STOVE":            "Stove",
		"FLOOR_HEATING":    "Floor Heating",
		"AIR_CONDITIONING": "Air Conditioning",
		"NONE":             "None",
	},
	"fuel_type": {
		"GASOLINE": "Gasoline",
		"DIESEL":   "Diesel",
		"LPG":      "LPG",
		"HYBRID":   "Hybrid",
		"ELECTRIC": "Electric",
	},
	"transmission": {
		"MANUAL":         "Manual",
		"AUTOMATIC":      "Automatic",
		"SEMI_AUTOMATIC": "Semi-Automatic",
	},
}

// DisplayLabel translates a raw enum value to its display label. Unknown
// domains and unknown values pass through unchanged; translation failure is
// never an error.
func DisplayLabel(enumDomain, raw string) string {
	values, ok := displayLabels[enumDomain]
	if !ok {
		return raw
	}
	label, ok := values[raw]
	if !ok {
		return raw
	}
	return label
}

func boolLabel(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
