package entities

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether the point carries no coordinates at all.
// (0, 0) is in the Gulf of Guinea and is not a valid location for this app.
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}
