package garden

import (
	"context"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// State is a read-only snapshot of the garden for clients.
type State struct {
	Current             *domain.Flower `json:"current,omitempty"`
	PendingFlower       *domain.Flower `json:"pendingFlower,omitempty"`
	HasUnrevealedFlower bool           `json:"hasUnrevealedFlower"`
	NextFlowerTime      *time.Time     `json:"nextFlowerTime,omitempty"`
	IsGenerating        bool           `json:"isGenerating"`
	ErrorMessage        string         `json:"errorMessage,omitempty"`
	DiscoveredCount     int            `json:"discoveredCount"`
	FavoritesCount      int            `json:"favoritesCount"`
	HerbariumCount      int            `json:"herbariumCount"`
	LastMilestone       int            `json:"lastMilestone"`
}

// State returns the current garden snapshot. The pending flower is
// returned without its image so it stays a surprise.
func (s *Service) State(ctx context.Context) (State, error) {
	var st State
	err := s.do(ctx, func() error {
		st = State{
			HasUnrevealedFlower: s.st.hasUnrevealed,
			IsGenerating:        s.st.generating,
			ErrorMessage:        s.st.errorMessage,
			DiscoveredCount:     len(s.st.discovered),
			FavoritesCount:      len(s.st.favorites),
			HerbariumCount:      len(s.st.herbarium),
			LastMilestone:       s.st.lastMilestone,
		}
		if cur := s.current(); cur != nil {
			c := cur.Clone()
			st.Current = &c
		}
		if s.st.pending != nil {
			p := s.st.pending.Clone()
			p.ImageData = nil
			st.PendingFlower = &p
		}
		if s.st.nextFlowerTime != nil {
			t := *s.st.nextFlowerTime
			st.NextFlowerTime = &t
		}
		return nil
	})
	return st, err
}
