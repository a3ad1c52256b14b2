package domain

import "time"

// Timestamps provides creation and update times for stored entities.
// Values are Unix epoch milliseconds, matching the wire format clients consume.
type Timestamps struct {
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// NowMillis returns the current time as Unix epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying entity changes.
func (ts *Timestamps) Touch() {
	ts.UpdatedAt = NowMillis()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new entity.
func (ts *Timestamps) InitTimestamps() {
	now := NowMillis()
	ts.CreatedAt = now
	ts.UpdatedAt = now
}
