package types

import "github.com/m-mizutani/goerr/v2"

// SortOption represents the ordering applied to an overlay listing
type SortOption string

const (
	SortNewest   SortOption = "newest"
	SortOldest   SortOption = "oldest"
	SortNameAsc  SortOption = "name_asc"
	SortNameDesc SortOption = "name_desc"
)

// AllSortOptions returns all valid sort options
func AllSortOptions() []SortOption {
	return []SortOption{
		SortNewest,
		SortOldest,
		SortNameAsc,
		SortNameDesc,
	}
}

// IsValid checks if the sort option is valid
func (s SortOption) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortNameAsc, SortNameDesc:
		return true
	default:
		return false
	}
}

// Normalize returns the option, treating empty as SortNewest.
func (s SortOption) Normalize() SortOption {
	if s == "" {
		return SortNewest
	}
	return s
}

// String returns the string representation of the sort option
func (s SortOption) String() string {
	return string(s)
}

// ParseSortOption parses a string into a SortOption
func ParseSortOption(s string) (SortOption, error) {
	opt := SortOption(s)
	if !opt.IsValid() {
		return "", goerr.New("invalid sort option", goerr.V("sort", s))
	}
	return opt, nil
}
