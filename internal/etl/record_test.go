package etl

import (
	"testing"

	"yvrfountains/internal/domain/fountains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vancouverMapping(t *testing.T) Mapping {
	t.Helper()
	mapping, err := Resolve([]string{
		"mapid", "name", "location", "geo_local_area", "lat", "lon",
		"in_operation", "pet_friendly", "bottle_filler", "wheelchair_accessible",
	})
	require.NoError(t, err)
	return mapping
}

func TestMapping_Fountain(t *testing.T) {
	mapping := vancouverMapping(t)

	record := []string{
		"DFPB0001", "Second Beach", "North side of pool", "West End",
		"49.2905", "-123.1498", "In Operation", "Y", "yes", "",
	}

	fountain, err := mapping.Fountain(record, 3, 12)
	require.NoError(t, err)

	assert.Equal(t, int64(3), fountain.CityID)
	require.NotNil(t, fountain.SourceDatasetID)
	assert.Equal(t, int64(12), *fountain.SourceDatasetID)
	assert.Equal(t, "Second Beach", fountain.Name)
	require.NotNil(t, fountain.OriginalRef)
	assert.Equal(t, "DFPB0001", *fountain.OriginalRef)
	assert.Equal(t, "West End", *fountain.Neighbourhood)
	assert.Equal(t, "North side of pool", *fountain.LocationDescription)
	assert.InDelta(t, 49.2905, fountain.Lat, 0.0001)
	assert.InDelta(t, -123.1498, fountain.Lon, 0.0001)
	assert.Equal(t, fountains.StatusOperational, fountain.OperationalStatus)
	assert.Equal(t, fountains.PetFriendlyYes, fountain.PetFriendly)
	require.NotNil(t, fountain.BottleFiller)
	assert.True(t, *fountain.BottleFiller)
	assert.Nil(t, fountain.WheelchairAccessible)
	assert.True(t, fountain.Active)
}

func TestMapping_Fountain_RowErrors(t *testing.T) {
	mapping := vancouverMapping(t)

	tests := []struct {
		name    string
		record  []string
		wantMsg string
	}{
		{
			name:    "blank name",
			record:  []string{"DF1", "", "", "", "49.2", "-123.1", "", "", "", ""},
			wantMsg: "name is empty",
		},
		{
			name:    "blank source key",
			record:  []string{"", "Fountain", "", "", "49.2", "-123.1", "", "", "", ""},
			wantMsg: "source record key is empty",
		},
		{
			name:    "unparseable latitude",
			record:  []string{"DF1", "Fountain", "", "", "forty-nine", "-123.1", "", "", "", ""},
			wantMsg: "lat",
		},
		{
			name:    "latitude out of range",
			record:  []string{"DF1", "Fountain", "", "", "95.0", "-123.1", "", "", "", ""},
			wantMsg: "lat",
		},
		{
			name:    "longitude out of range",
			record:  []string{"DF1", "Fountain", "", "", "49.2", "-181.0", "", "", "", ""},
			wantMsg: "lon",
		},
		{
			name:    "missing coordinates",
			record:  []string{"DF1", "Fountain", "", "", "", "", "", "", "", ""},
			wantMsg: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fountain, err := mapping.Fountain(tt.record, 1, 1)
			require.Error(t, err)
			assert.Nil(t, fountain)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMapping_Fountain_OptionalCellsStayNil(t *testing.T) {
	mapping := vancouverMapping(t)

	record := []string{"DF1", "Fountain", "", "", "49.2", "-123.1", "", "", "", ""}
	fountain, err := mapping.Fountain(record, 1, 1)
	require.NoError(t, err)

	assert.Nil(t, fountain.Neighbourhood)
	assert.Nil(t, fountain.LocationDescription)
	assert.Nil(t, fountain.SeasonNote)
	assert.Nil(t, fountain.BottleFiller)
	assert.Nil(t, fountain.WheelchairAccessible)
	assert.Equal(t, fountains.StatusUnknown, fountain.OperationalStatus)
	assert.Equal(t, fountains.PetFriendlyUnknown, fountain.PetFriendly)
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"In Operation", fountains.StatusOperational},
		{"OPERATIONAL", fountains.StatusOperational},
		{"yes", fountains.StatusOperational},
		{"Seasonal", fountains.StatusSeasonal},
		{"summer only", fountains.StatusSeasonal},
		{"Out of Service", fountains.StatusClosed},
		{"no", fountains.StatusClosed},
		{"", fountains.StatusUnknown},
		{"scheduled for review", fountains.StatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizePetFriendly(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Y", fountains.PetFriendlyYes},
		{"pet friendly", fountains.PetFriendlyYes},
		{"N", fountains.PetFriendlyNo},
		{"FALSE", fountains.PetFriendlyNo},
		{"", fountains.PetFriendlyUnknown},
		{"maybe", fountains.PetFriendlyUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePetFriendly(tt.raw), "raw=%q", tt.raw)
	}
}
