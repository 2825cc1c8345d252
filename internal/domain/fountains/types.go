package fountains

import (
	"context"
	"errors"
	"time"
)

var ErrFountainNotFound = errors.New("fountain not found")

const QueryTimeoutDuration = time.Second * 5

// Operational status values accepted by the fountains table.
const (
	StatusOperational = "operational"
	StatusSeasonal    = "seasonal"
	StatusClosed      = "closed"
	StatusUnknown     = "unknown"
)

// Pet-friendly values. Source datasets rarely state this, hence the
// explicit unknown.
const (
	PetFriendlyYes     = "yes"
	PetFriendlyNo      = "no"
	PetFriendlyUnknown = "unknown"
)

// Fountain represents a drinking fountain in the database.
type Fountain struct {
	ID                   int64     `json:"id"`
	CityID               int64     `json:"city_id"`
	SourceDatasetID      *int64    `json:"source_dataset_id,omitempty"`
	Name                 string    `json:"name"`
	Neighbourhood        *string   `json:"neighbourhood,omitempty"`
	LocationDescription  *string   `json:"location_description,omitempty"`
	Lat                  float64   `json:"lat"`
	Lon                  float64   `json:"lon"`
	OperationalStatus    string    `json:"operational_status"`
	SeasonNote           *string   `json:"season_note,omitempty"`
	PetFriendly          string    `json:"pet_friendly"`
	BottleFiller         *bool     `json:"bottle_filler,omitempty"`
	WheelchairAccessible *bool     `json:"wheelchair_accessible,omitempty"`
	OriginalRef          *string   `json:"original_ref,omitempty"`
	PhotoURL             *string   `json:"photo_url,omitempty"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Overview extends Fountain with the aggregate columns of the
// fountain_details view. AverageRating is nil, not zero, for fountains
// without approved reviews.
type Overview struct {
	Fountain
	AverageRating      *float64   `json:"average_rating"`
	ApprovedCount      int        `json:"approved_count"`
	AdminApprovedCount int        `json:"admin_approved_count"`
	LatestReviewedAt   *time.Time `json:"latest_reviewed_at,omitempty"`
}

// FeatureCollection is the GeoJSON document the map client consumes.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // longitude, latitude
}

type FeatureProperties struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Neighbourhood     *string  `json:"neighbourhood,omitempty"`
	OperationalStatus string   `json:"operational_status"`
	PetFriendly       string   `json:"pet_friendly"`
	BottleFiller      *bool    `json:"bottle_filler,omitempty"`
	PhotoURL          *string  `json:"photo_url,omitempty"`
	AverageRating     *float64 `json:"average_rating"`
	ApprovedCount     int      `json:"approved_count"`
}

type Store interface {
	GetByID(ctx context.Context, fountainID int64) (*Fountain, error)
	GetOverviewByID(ctx context.Context, fountainID int64) (*Overview, error)
	ListActive(ctx context.Context) ([]Fountain, error)
	ListOverview(ctx context.Context) ([]Overview, error)
	Create(ctx context.Context, fountain *Fountain) error
	Update(ctx context.Context, fountainID int64, updates map[string]interface{}) error
	SetActive(ctx context.Context, fountainID int64, active bool) error
	SetPhotoURL(ctx context.Context, fountainID int64, photoURL string) error
	UpsertByOriginalRef(ctx context.Context, fountain *Fountain) (created bool, err error)
}

// GeoJSON assembles a FeatureCollection from overview rows.
func GeoJSON(overviews []Overview) *FeatureCollection {
	features := make([]Feature, 0, len(overviews))
	for _, o := range overviews {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: [2]float64{o.Lon, o.Lat},
			},
			Properties: FeatureProperties{
				ID:                o.ID,
				Name:              o.Name,
				Neighbourhood:     o.Neighbourhood,
				OperationalStatus: o.OperationalStatus,
				PetFriendly:       o.PetFriendly,
				BottleFiller:      o.BottleFiller,
				PhotoURL:          o.PhotoURL,
				AverageRating:     o.AverageRating,
				ApprovedCount:     o.ApprovedCount,
			},
		})
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features}
}
