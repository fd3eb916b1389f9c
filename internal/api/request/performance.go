package request

// TriggerSnapshotRequest asks for a snapshot of the given month.
// An empty month means the current month.
type TriggerSnapshotRequest struct {
	Month string `json:"month,omitempty"`
}
