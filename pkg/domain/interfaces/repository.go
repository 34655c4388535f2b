package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Overlay() OverlayRepository
	Category() CategoryRepository

	// Close releases the underlying storage connection. The repository must
	// not be used after Close returns.
	Close() error
}
