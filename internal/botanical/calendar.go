package botanical

import "time"

// Holiday is a calendar day that flavours generation.
type Holiday struct {
	Name           string
	Descriptor     string
	BouquetWorthy  bool
	BouquetTheme   string
	BouquetFlowers []string
	month          time.Month
	day            int
}

var holidays = []Holiday{
	{Name: "New Year", Descriptor: "celebration sparkle", BouquetWorthy: true,
		BouquetTheme: "fresh beginnings with white and gold", BouquetFlowers: []string{"White Rose", "Gold Chrysanthemum", "Baby's Breath"},
		month: time.January, day: 1},
	{Name: "Valentine's Day", Descriptor: "romantic red heart", BouquetWorthy: true,
		BouquetTheme: "love and passion with red roses and pink lilies", BouquetFlowers: []string{"Red Rose", "Pink Lily", "Tulip"},
		month: time.February, day: 14},
	{Name: "International Women's Day", Descriptor: "empowering purple", BouquetWorthy: true,
		BouquetTheme: "strength and beauty with purple orchids and yellow tulips", BouquetFlowers: []string{"Purple Orchid", "Yellow Tulip", "Mimosa"},
		month: time.March, day: 8},
	{Name: "St. Patrick's Day", Descriptor: "lucky emerald shamrock", BouquetWorthy: true,
		BouquetTheme: "Irish luck with green carnations and white roses", BouquetFlowers: []string{"Green Carnation", "White Rose", "Bells of Ireland"},
		month: time.March, day: 17},
	{Name: "May Day", Descriptor: "spring festival", BouquetWorthy: true,
		BouquetTheme: "spring celebration with mixed wildflowers", BouquetFlowers: []string{"Cornflower", "Poppy", "Daisy"},
		month: time.May, day: 1},
	{Name: "Mother's Day", Descriptor: "maternal love", BouquetWorthy: true,
		BouquetTheme: "appreciation with pink peonies and white gardenias", BouquetFlowers: []string{"Pink Peony", "White Gardenia", "Carnation"},
		month: time.May, day: 12},
	{Name: "Father's Day", Descriptor: "paternal strength", BouquetWorthy: true,
		BouquetTheme: "strength with sunflowers and blue delphiniums", BouquetFlowers: []string{"Sunflower", "Blue Delphinium", "Thistle"},
		month: time.June, day: 16},
	{Name: "Halloween", Descriptor: "mystical autumn", BouquetWorthy: true,
		BouquetTheme: "mysterious beauty with orange marigolds and deep purple roses", BouquetFlowers: []string{"Orange Marigold", "Deep Purple Rose", "Black Calla Lily"},
		month: time.October, day: 31},
	{Name: "Thanksgiving", Descriptor: "grateful harvest", BouquetWorthy: true,
		BouquetTheme: "gratitude with autumn chrysanthemums and wheat stalks", BouquetFlowers: []string{"Chrysanthemum", "Wheat", "Sunflower"},
		month: time.November, day: 28},
	{Name: "Christmas", Descriptor: "festive winter holly", BouquetWorthy: true,
		BouquetTheme: "festive joy with red poinsettias and white roses", BouquetFlowers: []string{"Red Poinsettia", "White Rose", "Holly"},
		month: time.December, day: 25},
}

// HolidayOn returns the holiday falling on t's calendar day, if any.
func HolidayOn(t time.Time) (Holiday, bool) {
	for _, h := range holidays {
		if t.Month() == h.month && t.Day() == h.day {
			return h, true
		}
	}
	return Holiday{}, false
}

// ZodiacSign is an astrological sign spanning a date range.
type ZodiacSign struct {
	Name       string
	Descriptor string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

var zodiacSigns = []ZodiacSign{
	{"Aries", "fiery ram", time.March, 21, time.April, 19},
	{"Taurus", "earthly bull", time.April, 20, time.May, 20},
	{"Gemini", "twin butterfly", time.May, 21, time.June, 20},
	{"Cancer", "lunar crab", time.June, 21, time.July, 22},
	{"Leo", "golden lion", time.July, 23, time.August, 22},
	{"Virgo", "harvest maiden", time.August, 23, time.September, 22},
	{"Libra", "balanced scale", time.September, 23, time.October, 22},
	{"Scorpio", "mysterious scorpion", time.October, 23, time.November, 21},
	{"Sagittarius", "adventurous archer", time.November, 22, time.December, 21},
	{"Capricorn", "mountain goat", time.December, 22, time.January, 19},
	{"Aquarius", "water bearer", time.January, 20, time.February, 18},
	{"Pisces", "dreamy fish", time.February, 19, time.March, 20},
}

// ZodiacOn returns the zodiac sign for t.
func ZodiacOn(t time.Time) ZodiacSign {
	m, d := t.Month(), t.Day()
	for _, z := range zodiacSigns {
		if (m == z.startMonth && d >= z.startDay) || (m == z.endMonth && d <= z.endDay) {
			return z
		}
	}
	// Unreachable: the table covers every day of the year.
	return zodiacSigns[0]
}

// TimeOfDay buckets the hour of t into morning, evening or night.
// Daytime hours return an empty string.
func TimeOfDay(t time.Time) (period, modifier string) {
	switch h := t.Hour(); {
	case h >= 5 && h < 9:
		return "morning", "dawn-kissed"
	case h >= 17 && h < 21:
		return "evening", "sunset-hued"
	case h >= 21 || h < 5:
		return "night", "moonlit"
	}
	return "", ""
}
