package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var iso8601Duration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration convert an ISO 8601 duration (PT4M13S) into a display
// label (4:13). Unparseable input yields "N/A"
func FormatDuration(duration string) string {
	match := iso8601Duration.FindStringSubmatch(duration)
	if match == nil {
		return "N/A"
	}

	hours := atoiOrZero(match[1])
	minutes := atoiOrZero(match[2])
	seconds := atoiOrZero(match[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
