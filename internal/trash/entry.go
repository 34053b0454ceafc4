package trash

import (
	"errors"
	"time"
)

// ErrInvalidTimestamp is returned when a deletion time cannot be expressed
// as a calendar date.
var ErrInvalidTimestamp = errors.New("invalid deletion timestamp")

// Range of Unix seconds that map to years 0001 through 9999.
const (
	minUnix int64 = -62135596800
	maxUnix int64 = 253402300799
)

// InvalidTime marks an entry whose deletion time could not be read.
const InvalidTime int64 = minUnix - 1

// Entry is one item sitting in the trash.
type Entry struct {
	ID             string `json:"id"`              // Key of the item inside the trash store
	Name           string `json:"name"`            // Base name the item had before deletion
	OriginalParent string `json:"original_parent"` // Directory the item was deleted from
	TimeDeleted    int64  `json:"time_deleted"`    // Seconds since epoch, UTC
	Size           int64  `json:"size"`            // Bytes, best effort
}

// DeletedAt returns the deletion time in loc.
func (e Entry) DeletedAt(loc *time.Location) (time.Time, error) {
	if e.TimeDeleted < minUnix || e.TimeDeleted > maxUnix {
		return time.Time{}, ErrInvalidTimestamp
	}
	return time.Unix(e.TimeDeleted, 0).In(loc), nil
}

// Bin gives access to a trash store.
type Bin interface {
	// List returns every entry currently in the trash.
	List() ([]Entry, error)
	// Purge permanently removes the given entries.
	Purge(entries []Entry) error
}
