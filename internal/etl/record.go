package etl

import (
	"fmt"
	"strconv"
	"strings"

	"yvrfountains/internal/domain/fountains"
)

// Fountain builds an upsert-ready fountain from one CSV record. Coordinate
// range violations and blank required cells are row-level errors; the
// caller decides whether to skip or abort.
func (m Mapping) Fountain(record []string, cityID, datasetID int64) (*fountains.Fountain, error) {
	name := m.Value(record, FieldName)
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	ref := m.Value(record, FieldOriginalRef)
	if ref == "" {
		return nil, fmt.Errorf("source record key is empty")
	}

	lat, err := parseCoordinate(m.Value(record, FieldLat), -90, 90)
	if err != nil {
		return nil, fmt.Errorf("lat: %w", err)
	}
	lon, err := parseCoordinate(m.Value(record, FieldLon), -180, 180)
	if err != nil {
		return nil, fmt.Errorf("lon: %w", err)
	}

	f := &fountains.Fountain{
		CityID:               cityID,
		SourceDatasetID:      &datasetID,
		Name:                 name,
		Neighbourhood:        optional(m.Value(record, FieldNeighbourhood)),
		LocationDescription:  optional(m.Value(record, FieldLocation)),
		Lat:                  lat,
		Lon:                  lon,
		OperationalStatus:    NormalizeStatus(m.Value(record, FieldStatus)),
		SeasonNote:           optional(m.Value(record, FieldSeasonNote)),
		PetFriendly:          NormalizePetFriendly(m.Value(record, FieldPetFriendly)),
		BottleFiller:         parseTriState(m.Value(record, FieldBottleFiller)),
		WheelchairAccessible: parseTriState(m.Value(record, FieldWheelchair)),
		OriginalRef:          &ref,
		Active:               true,
	}
	return f, nil
}

// NormalizeStatus folds the free-text operation flags of the city exports
// into the fixed status enum. Unrecognized values become unknown rather
// than failing the row.
func NormalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "operational", "in operation", "in_operation", "active", "open", "yes", "y", "true":
		return fountains.StatusOperational
	case "seasonal", "summer", "summer only":
		return fountains.StatusSeasonal
	case "closed", "out of service", "inactive", "no", "n", "false":
		return fountains.StatusClosed
	default:
		return fountains.StatusUnknown
	}
}

// NormalizePetFriendly maps yes/no spellings onto the tri-state column.
func NormalizePetFriendly(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "pet friendly":
		return fountains.PetFriendlyYes
	case "no", "n", "false":
		return fountains.PetFriendlyNo
	default:
		return fountains.PetFriendlyUnknown
	}
}

func parseCoordinate(raw string, min, max float64) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("is empty")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%v is outside [%v, %v]", v, min, max)
	}
	return v, nil
}

// parseTriState reads optional yes/no cells; anything ambiguous stays nil.
func parseTriState(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		v := true
		return &v
	case "no", "n", "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
