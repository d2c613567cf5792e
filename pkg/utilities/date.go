package utilities

import (
	"fmt"
	"time"
)

// Fixed name tables; indexed by time.Weekday / time.Month-1.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// PrettyDate renders a moment as "<Weekday>, <Month> <Day> - <Year>".
// The calendar fields are taken in UTC so the rendering does not depend on
// the host timezone.
func PrettyDate(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%s, %s %d - %d",
		weekdayNames[u.Weekday()], monthNames[u.Month()-1], u.Day(), u.Year())
}
