// Package etl turns city open-data CSV exports into fountain records. The
// header mapping is a declarative synonym table resolved up front; nothing
// guesses at columns row by row.
package etl

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies a canonical fountain attribute the importer can fill.
type Field string

const (
	FieldName          Field = "name"
	FieldNeighbourhood Field = "neighbourhood"
	FieldLocation      Field = "location_description"
	FieldLat           Field = "lat"
	FieldLon           Field = "lon"
	FieldStatus        Field = "operational_status"
	FieldSeasonNote    Field = "season_note"
	FieldPetFriendly   Field = "pet_friendly"
	FieldBottleFiller  Field = "bottle_filler"
	FieldWheelchair    Field = "wheelchair_accessible"
	FieldOriginalRef   Field = "original_ref"
)

// requiredFields must all resolve or the import refuses to start.
var requiredFields = []Field{FieldName, FieldLat, FieldLon, FieldOriginalRef}

// columnMap lists, per field, the header spellings accepted across the
// city exports we have seen, in preference order. Matching is exact on the
// normalized header; earlier synonyms win over later ones.
var columnMap = map[Field][]string{
	FieldName:          {"name", "park_name", "facility", "site_name"},
	FieldNeighbourhood: {"geo_local_area", "neighbourhood", "neighborhood", "local_area"},
	FieldLocation:      {"location", "location_description", "site_description"},
	FieldLat:           {"lat", "latitude", "y"},
	FieldLon:           {"lon", "long", "longitude", "x"},
	FieldStatus:        {"in_operation", "status", "operational_status"},
	FieldSeasonNote:    {"operational_season", "season", "season_note"},
	FieldPetFriendly:   {"pet_friendly", "dog_friendly"},
	FieldBottleFiller:  {"bottle_filler", "water_bottle_filler", "refill_station"},
	FieldWheelchair:    {"wheelchair_accessible", "wheelchair_access", "accessible"},
	FieldOriginalRef:   {"mapid", "compkey", "objectid", "asset_id"},
}

// Mapping is a resolved header: canonical field to column index.
type Mapping map[Field]int

// Resolve matches a CSV header row against the synonym table. Missing
// required fields abort the import before any row is read.
func Resolve(header []string) (Mapping, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	mapping := make(Mapping)
	for field, synonyms := range columnMap {
		for _, syn := range synonyms {
			if i, ok := index[syn]; ok {
				mapping[field] = i
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("header is missing required columns: %s", strings.Join(missing, ", "))
	}
	return mapping, nil
}

// Value returns the trimmed cell for a field, or "" when the field did not
// resolve or the record is short.
func (m Mapping) Value(record []string, field Field) string {
	i, ok := m[field]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff") // BOM on the first header cell
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}
