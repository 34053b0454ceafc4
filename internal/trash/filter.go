package trash

import "time"

// Selection is the outcome of SelectExpired.
type Selection struct {
	Expired []Entry // Entries old enough to purge, in input order
	Invalid []Entry // Entries whose deletion time could not be converted
}

// SelectExpired picks the entries deleted strictly before now minus
// preserveDays calendar days, evaluated in now's location.
func SelectExpired(now time.Time, preserveDays int, entries []Entry) Selection {
	cutoff := now.AddDate(0, 0, -preserveDays)

	var sel Selection
	for _, e := range entries {
		deleted, err := e.DeletedAt(now.Location())
		if err != nil {
			sel.Invalid = append(sel.Invalid, e)
			continue
		}
		if deleted.Before(cutoff) {
			sel.Expired = append(sel.Expired, e)
		}
	}
	return sel
}
