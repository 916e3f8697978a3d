package provider

import "github.com/heartmarshall/florarium-backend/internal/domain"

// ImageRequest asks an image provider for one flower picture.
type ImageRequest struct {
	Descriptor      string
	IsBouquet       bool
	BouquetFlowers  []string
	PersonalMessage string
}

// ImageResult is a generated image and the prompt that produced it.
type ImageResult struct {
	Data   []byte
	Prompt string
}

// DetailsRequest carries what a text provider knows about a flower.
type DetailsRequest struct {
	Name           string
	Descriptor     string
	ScientificName string
	Season         domain.Season
	Location       string
	Context        string
	IsBouquet      bool
	HolidayName    string
}

// CopyRequest asks for notification copy.
type CopyRequest struct {
	Kind       domain.NotificationKind
	FlowerName string
	Season     domain.Season
	Location   string
}

// Copy is a notification title/body pair.
type Copy struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
