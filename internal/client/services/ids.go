// Package services contains the application services of devprofiler: the
// account directory, the session manager and the device repository logic
// layered over the storage repositories.
package services

import (
	"time"

	"github.com/google/uuid"
)

// newID and now are test seams. IDs are UUIDv7 so that they sort by
// creation time, like the millisecond timestamps older data carries.
var (
	newID = func() string { return uuid.Must(uuid.NewV7()).String() }
	now   = func() time.Time { return time.Now().UTC() }
)
