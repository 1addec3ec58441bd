package entities

// Place is one distributor entry in the supplier network view
type Place struct {
	Title    string   `json:"title"`
	URI      string   `json:"uri"`
	Address  string   `json:"address,omitempty"`
	Snippets []string `json:"snippets"`
	Featured bool     `json:"featured"`
}

// LatLng is a user location used to bias the distributor search
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
