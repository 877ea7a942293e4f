package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID builds a timestamp-based identifier in the documented
// {prefix}_{discriminant}_{epochMillis} form. Uniqueness relies on the
// millisecond clock: concurrent same-millisecond requests can collide.
func newID(prefix, discriminant string) string {
	return fmt.Sprintf("%s_%s_%d", prefix, discriminant, time.Now().UnixMilli())
}

// newContactID builds a contact identifier. Contact ids carry no flow
// discriminant and append a random suffix instead.
func newContactID() string {
	return fmt.Sprintf("contact_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// nowISO returns the current UTC time in ISO-8601 form for created_at fields.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
