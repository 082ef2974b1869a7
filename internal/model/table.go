package model

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableFree TableStatus = "FREE"
	TableBusy TableStatus = "BUSY"
)

// Table represents a physical table. Tab is a weak reference to the open
// tab currently occupying it, derived by matching table numbers against
// open tabs on every reload; it is never persisted.
type Table struct {
	ID     string      `json:"id"`
	Number string      `json:"number"`
	Status TableStatus `json:"status"`
	Tab    *Tab        `json:"tab,omitempty"`
}
