package update

import (
	"fmt"
	"math"
	"time"
)

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

// relativeDay labels t against now: today, tomorrow, yesterday, or the date.
func relativeDay(t, now time.Time) string {
	t = t.In(now.Location())
	days := int(math.Round(startOfDay(t).Sub(startOfDay(now)).Hours() / 24))
	switch days {
	case 0:
		return "today " + t.Format("15:04")
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	default:
		return t.Format("2006-01-02")
	}
}
