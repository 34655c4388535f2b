package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Lifecycle errors
	ErrAlreadyLoaded = errors.New("library is already loaded")
	ErrNotLoaded     = errors.New("library is not loaded")

	// Category errors
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
)

// Context keys for error values
const (
	OverlayIDKey = "overlay_id"
	CategoryKey  = "category"
)
