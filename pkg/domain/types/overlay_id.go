package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// OverlayID is the unique identifier of an overlay record. It is generated
// on creation and never changes afterwards.
type OverlayID string

// NewOverlayID generates a fresh random OverlayID
func NewOverlayID() OverlayID {
	return OverlayID(uuid.NewString())
}

// Validate checks if the OverlayID is a well-formed UUID
func (x OverlayID) Validate() error {
	if x == "" {
		return goerr.New("overlay ID cannot be empty")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "overlay ID must be a UUID", goerr.V("id", x))
	}
	return nil
}

// String returns the string representation of OverlayID
func (x OverlayID) String() string {
	return string(x)
}
