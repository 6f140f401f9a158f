package registry

// Status is a record's publishing lifecycle state as reported by the
// host content system.
type Status string

const (
	// StatusPublished is the only status eligible for allocation.
	StatusPublished Status = "published"

	// StatusDraft is a record still being edited.
	StatusDraft Status = "draft"

	// StatusPending is a record awaiting review.
	StatusPending Status = "pending"

	// StatusTrashed is a record moved to the trash but not yet deleted.
	StatusTrashed Status = "trashed"
)

// PublishEvent is a publish-lifecycle notification from the host content
// system. The same event may fire many times for one record (every save
// re-triggers it), so its consumer must be idempotent.
type PublishEvent struct {
	// PermanentID is the record's stable host-assigned identifier.
	PermanentID string `json:"permanent_id"`

	// Category is the record's category at the time of the event.
	Category string `json:"category"`

	// ParentID is non-zero for child records, which are never sequenced.
	ParentID int64 `json:"parent_id"`

	// Status is the record's lifecycle state.
	Status Status `json:"status"`
}

// Eligible reports whether the event describes a top-level record in the
// published state. Category eligibility is checked separately against the
// configured set.
func (e PublishEvent) Eligible() bool {
	return e.ParentID == 0 && e.Status == StatusPublished
}

// DeleteEvent is a deletion notification from the host content system.
type DeleteEvent struct {
	// PermanentID is the deleted record's stable identifier.
	PermanentID string `json:"permanent_id"`
}
