package garden

import (
	"context"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// Stats summarises the collection.
type Stats struct {
	TotalDiscovered     int                      `json:"totalDiscovered"`
	Favorites           int                      `json:"favorites"`
	UniqueSpecies       int                      `json:"uniqueSpecies"`
	Bouquets            int                      `json:"bouquets"`
	WithHistory         int                      `json:"withOwnershipHistory"`
	ContinentCounts     map[domain.Continent]int `json:"continentCounts"`
	LocationCounts      map[string]int           `json:"locationCounts"`
	HerbariumCount      int                      `json:"herbariumCount"`
	HerbariumCompletion float64                  `json:"herbariumCompletion"`
	LastMilestone       int                      `json:"lastMilestone"`
}

// Stats computes collection statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.do(ctx, func() error {
		st = Stats{
			TotalDiscovered:     len(s.st.discovered),
			Favorites:           len(s.st.favorites),
			ContinentCounts:     make(map[domain.Continent]int),
			LocationCounts:      make(map[string]int),
			HerbariumCount:      len(s.st.herbarium),
			HerbariumCompletion: s.completion(),
			LastMilestone:       s.st.lastMilestone,
		}
		species := make(map[string]struct{})
		for i := range s.st.discovered {
			f := &s.st.discovered[i]
			if f.ScientificName != "" {
				species[f.ScientificName] = struct{}{}
			}
			if c, ok := f.Continent(); ok {
				st.ContinentCounts[c]++
			}
			if loc := f.Discovery.LocationName; loc != "" {
				st.LocationCounts[loc]++
			}
			if f.IsBouquet {
				st.Bouquets++
			}
			if f.HasOwnershipHistory() {
				st.WithHistory++
			}
		}
		st.UniqueSpecies = len(species)
		return nil
	})
	return st, err
}
