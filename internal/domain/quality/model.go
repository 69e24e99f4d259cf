// Package quality manages JIS (job inspection sheet) routings: the ordered
// inspection operations a cladded spool passes through on the shop floor.
package quality

import "time"

// OpStatus is the state of one routing operation.
type OpStatus string

const (
	OpPending   OpStatus = "Pending"
	OpActive    OpStatus = "Active"
	OpCompleted OpStatus = "Completed"
	OpSkipped   OpStatus = "Skipped"
)

// CategoryCladding is the default routing category for spool operations.
const CategoryCladding = "CLADDING/SPOOL"

// Operation is one step of a spool's inspection routing. StartDate and
// FinishDate are RFC 3339 timestamps stamped at sign-off, empty until then.
type Operation struct {
	ID          string    `json:"id"`
	TargetID    string    `json:"targetId"`
	Category    string    `json:"category"`
	ProcessName string    `json:"processName"`
	Description string    `json:"description"`
	Sequence    int       `json:"sequence"`
	Status      OpStatus  `json:"status"`
	StartDate   string    `json:"startDate"`
	FinishDate  string    `json:"finishDate"`
	InspectorID string    `json:"inspectorId"`
	CreatedAt   time.Time `json:"created_at"`
}

// Action is a sign-off performed against an operation.
type Action string

const (
	ActionStart  Action = "START"
	ActionFinish Action = "FINISH"
	ActionSkip   Action = "SKIP"
)
