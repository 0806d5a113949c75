package validation

import (
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

var validAppStatuses = map[string]bool{
	model.AppStatusRequested:  true,
	model.AppStatusRegistered: true,
	model.AppStatusDeposited:  true,
	model.AppStatusCompleted:  true,
	model.AppStatusPaid:       true,
	model.AppStatusCancelled:  true,
}

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}
