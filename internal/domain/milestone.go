package domain

import "fmt"

// MilestoneThresholds are the discovery counts that earn a celebration bouquet.
var MilestoneThresholds = []int{10, 25, 50, 100, 250, 500, 1000}

// MilestoneBouquetName is the name given to the celebration bouquet for
// threshold. It doubles as the existence check for that milestone.
func MilestoneBouquetName(threshold int) string {
	return fmt.Sprintf("Milestone Bouquet: %d Discoveries", threshold)
}

// NextMilestone returns the first threshold reached by count that lies
// above watermark. Only one threshold is returned per call even when count
// has crossed several.
func NextMilestone(count, watermark int) (int, bool) {
	for _, t := range MilestoneThresholds {
		if t <= watermark {
			continue
		}
		if count >= t {
			return t, true
		}
		break
	}
	return 0, false
}
