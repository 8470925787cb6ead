package domain

// Fingerprint is the device identity presented to the game backend for one
// messenger session.
type Fingerprint struct {
	SessionName string
	UserAgent   string
}
