package models

// Request bodies for the chart endpoints. Defined in domain for consistency
// and reuse; validation tags are enforced by pkg/http.ReadAndValidateRequest.

// BirthData describes one subject: who, when (UTC, ISO-8601) and where.
type BirthData struct {
	Name        string             `json:"name" validate:"required,max=200"`
	BirthUTC    string             `json:"birth_datetime_utc" validate:"required"`
	Latitude    float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64            `json:"longitude" validate:"gte=-180,lte=180"`
	HouseSystem string             `json:"house_system" validate:"omitempty,oneof=placidus koch porphyrius regiomontanus campanus equal whole_sign"`
	Orbs        map[string]float64 `json:"orbs" validate:"omitempty,dive,gt=0,lte=30"`
}

// NatalRequest asks for a single natal chart.
type NatalRequest struct {
	BirthData
}

// PairRequest carries two subjects, for synastry and composite charts.
type PairRequest struct {
	Person1 BirthData `json:"person1" validate:"required"`
	Person2 BirthData `json:"person2" validate:"required"`
}

// TransitRequest relates a natal chart to transiting positions. An empty
// TransitUTC means "now".
type TransitRequest struct {
	BirthData  BirthData `json:"birth_data" validate:"required"`
	TransitUTC string    `json:"transit_datetime_utc" validate:"omitempty"`
}
