package botanical

import (
	"strings"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// SeasonAt returns the meteorological season of t. Latitudes below the
// equator get the opposite season.
func SeasonAt(t time.Time, latitude float64) domain.Season {
	season := northernSeason(t.Month())
	if latitude < 0 {
		return opposite(season)
	}
	return season
}

func northernSeason(m time.Month) domain.Season {
	switch m {
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	case time.September, time.October, time.November:
		return domain.SeasonAutumn
	default:
		return domain.SeasonWinter
	}
}

func opposite(s domain.Season) domain.Season {
	switch s {
	case domain.SeasonSpring:
		return domain.SeasonAutumn
	case domain.SeasonSummer:
		return domain.SeasonWinter
	case domain.SeasonAutumn:
		return domain.SeasonSpring
	default:
		return domain.SeasonSummer
	}
}

// BloomsIn reports whether a free-text blooming season such as
// "Late spring to early summer" covers season.
func BloomsIn(bloomingSeason string, season domain.Season) bool {
	text := strings.ToLower(bloomingSeason)
	if text == "" {
		return false
	}
	if strings.Contains(text, "year-round") || strings.Contains(text, "all year") || strings.Contains(text, "year round") {
		return true
	}
	name := strings.ToLower(string(season))
	if strings.Contains(text, name) {
		return true
	}
	return season == domain.SeasonAutumn && strings.Contains(text, "fall")
}
