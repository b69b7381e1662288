package domain

type Grandstand struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

type VenueMap struct {
	Title       string       `json:"title"`
	Grandstands []Grandstand `json:"grandstands"`
}
