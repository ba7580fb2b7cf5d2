package models

// Operation names published on the change feed
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// ChangeEvent describes one successful write to the store.
type ChangeEvent struct {
	EventID   string `json:"eventId"`   // EventID is a unique identifier for the change.
	Entity    string `json:"entity"`    // Entity is the record kind, e.g. "athlete" or "event".
	Operation string `json:"operation"` // Operation is "create", "update" or "delete".
	EntityID  string `json:"entityId"`  // EntityID is the id of the written record.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the write.
}
