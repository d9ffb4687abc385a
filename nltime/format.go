package nltime

import (
	"fmt"
	"time"
)

// Format renders an instant in the compact Chinese form used for schedule
// confirmations, always including the concrete date: 2月19日 周三 15:00.
func Format(t time.Time) string {
	return fmt.Sprintf("%d月%d日 %s %02d:%02d",
		int(t.Month()), t.Day(), weekdayNamesCN[mondayIndex(t.Weekday())], t.Hour(), t.Minute())
}
