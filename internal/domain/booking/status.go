package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// InitialStatus is the state every newly created booking starts in.
// The create endpoint never accepts a status from the client.
func InitialStatus() Status {
	return StatusPending
}
