package selection

import (
	"countrypick/internal/domain"
)

// State holds selection state
type State struct {
	Committed        *domain.Item
	Typing           bool // a non-empty query hides the committed display
	RestoreAttempted bool
}

// ItemLookup finds an item of the loaded list by short code
type ItemLookup interface {
	FindByCode(code string) (domain.Item, int, bool)
	Loaded() bool
}
