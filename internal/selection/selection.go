// Package selection implements the mutable included-item collection backing
// the items step of the wizard. The selection is always derived from the
// service-adjusted catalog: required items are present unconditionally,
// optional items can be toggled, and custom items live outside the catalog
// entirely.
package selection

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/lendaria/calculadoria/internal/catalog"
)

// Selection holds the current item list for one draft.
type Selection struct {
	service catalog.Service
	items   []catalog.IncludedItem
}

// New builds a full default selection for the given service.
func New(service catalog.Service) *Selection {
	return &Selection{service: service, items: catalog.AdjustFor(service)}
}

// Restore rebuilds a selection from persisted items without reapplying
// catalog defaults.
func Restore(service catalog.Service, items []catalog.IncludedItem) *Selection {
	copied := make([]catalog.IncludedItem, len(items))
	copy(copied, items)
	return &Selection{service: service, items: copied}
}

// Service returns the service the selection is adjusted for.
func (s *Selection) Service() catalog.Service { return s.service }

// Items returns a copy of the current item list.
func (s *Selection) Items() []catalog.IncludedItem {
	items := make([]catalog.IncludedItem, len(s.items))
	copy(items, s.items)
	return items
}

// Toggle removes a selected item or re-adds a deselected catalog item.
// Required items never toggle. Re-added items come back with their
// service-adjusted catalog price and recurrence, not whatever they had
// when removed.
func (s *Selection) Toggle(id string) {
	if current, ok := catalog.FindItem(s.items, id); ok {
		if current.Required {
			return
		}
		s.remove(id)
		return
	}

	if item, ok := catalog.FindItem(catalog.AdjustFor(s.service), id); ok {
		s.items = append(s.items, item)
	}
}

// SetPrice sets an item's price. Negative input clamps to 0; unknown ids
// are ignored. No item is ever left with a negative price.
func (s *Selection) SetPrice(id string, price float64) {
	if price < 0 || math.IsNaN(price) {
		price = 0
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Price = price
			return
		}
	}
}

// ToggleRecurrence flips whether an item bills monthly or one-time. The
// price is untouched.
func (s *Selection) ToggleRecurrence(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsRecurring = !s.items[i].IsRecurring
			return
		}
	}
}

// AddCustom appends a user-defined item with a fresh id, price 0 and
// one-time billing. A label that is empty after trimming is rejected.
func (s *Selection) AddCustom(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	id := "custom-" + uuid.NewString()
	s.items = append(s.items, catalog.IncludedItem{
		ID:     id,
		Label:  label,
		Custom: true,
	})
	return id, true
}

// RemoveCustom removes a custom item unconditionally. Catalog items are not
// affected.
func (s *Selection) RemoveCustom(id string) {
	if item, ok := catalog.FindItem(s.items, id); !ok || !item.Custom {
		return
	}
	s.remove(id)
}

// SwitchService re-derives the selection for a new service type:
//
//  1. the catalog is re-adjusted for the new service,
//  2. every required item of the adjusted catalog is included with its
//     adjusted price,
//  3. previously selected optional items survive only if the adjusted
//     catalog still carries their id,
//  4. custom items survive verbatim.
func (s *Selection) SwitchService(service catalog.Service) {
	adjusted := catalog.AdjustFor(service)

	next := make([]catalog.IncludedItem, 0, len(adjusted))
	for _, item := range adjusted {
		if item.Required {
			next = append(next, item)
		}
	}
	for _, item := range s.items {
		if item.Required {
			continue
		}
		if item.Custom {
			next = append(next, item)
			continue
		}
		if _, ok := catalog.FindItem(adjusted, item.ID); ok {
			next = append(next, item)
		}
	}

	s.service = service
	s.items = next
}

// DeselectedValue sums the catalog value of the adjusted default items that
// are currently deselected. The items step uses it to suggest a lower base
// value.
func (s *Selection) DeselectedValue() float64 {
	var total float64
	for _, item := range catalog.AdjustFor(s.service) {
		if _, selected := catalog.FindItem(s.items, item.ID); !selected {
			total += item.Price
		}
	}
	return total
}

func (s *Selection) remove(id string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}
