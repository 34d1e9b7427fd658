package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey indicates a price lookup for a key the catalog does not carry.
// The legacy site silently priced unknown keys at zero; that behaviour is only
// available behind the lenient flag.
var ErrUnknownKey = errors.New("catalog: unknown price key")

// KeyRule selects how an accommodation selection maps to a price key.
type KeyRule int

const (
	// KeyPaxBedding derives "{pax} Pax With|Without Bedding"
	KeyPaxBedding KeyRule = iota
	// KeyBedding derives "With Bedding" / "Without Bedding"
	KeyBedding
	// KeyFixed always uses the configured fixed key
	KeyFixed
)

// AccommodationType holds the price table and key rule for one accommodation type
type AccommodationType struct {
	Rule     KeyRule          `json:"-"`
	FixedKey string           `json:"-"`
	Prices   map[string]int64 `json:"prices"`
}

// PriceKey resolves the price key for a selection against this type's rule
func (t AccommodationType) PriceKey(bedding bool, pax int) string {
	switch t.Rule {
	case KeyFixed:
		return t.FixedKey
	case KeyBedding:
		if bedding {
			return "With Bedding"
		}
		return "Without Bedding"
	default:
		variant := "Without"
		if bedding {
			variant = "With"
		}
		return fmt.Sprintf("%d Pax %s Bedding", pax, variant)
	}
}

// Ground is a bookable ground with its capacity
type Ground struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// MenuItem is a single orderable menu item
type MenuItem struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
}

// MenuCategory groups menu items under a category heading
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// Catalog is the resort's pricing configuration. It is built once at startup
// and injected into the services that need it; nothing mutates it afterwards.
// All amounts are whole Kenyan shillings.
type Catalog struct {
	Activities    map[string]map[string]int64  `json:"activities"`
	Food          map[string]int64             `json:"food"`
	Drinks        map[string]int64             `json:"drinks"`
	Accommodation map[string]AccommodationType `json:"accommodation"`
	Menu          []MenuCategory               `json:"menu"`
	Grounds       []Ground                     `json:"grounds"`

	// Lenient restores the legacy zero-price fallback for unknown keys.
	Lenient bool `json:"-"`
}

// ActivityPrice returns the unit price for an (activity, option) pair
func (c *Catalog) ActivityPrice(activity, option string) (int64, error) {
	options, ok := c.Activities[activity]
	if !ok {
		return c.miss(fmt.Sprintf("activity %q", activity))
	}
	price, ok := options[option]
	if !ok {
		return c.miss(fmt.Sprintf("activity %q option %q", activity, option))
	}
	return price, nil
}

// FoodPrice returns the flat price for a food category
func (c *Catalog) FoodPrice(name string) (int64, error) {
	price, ok := c.Food[name]
	if !ok {
		return c.miss(fmt.Sprintf("food %q", name))
	}
	return price, nil
}

// DrinkPrice returns the flat price for a drink category
func (c *Catalog) DrinkPrice(name string) (int64, error) {
	price, ok := c.Drinks[name]
	if !ok {
		return c.miss(fmt.Sprintf("drink %q", name))
	}
	return price, nil
}

// MenuPrice returns the unit price for a menu item
func (c *Catalog) MenuPrice(name string) (int64, error) {
	for _, category := range c.Menu {
		for _, item := range category.Items {
			if item.Name == name {
				return item.Price, nil
			}
		}
	}
	return c.miss(fmt.Sprintf("menu item %q", name))
}

// AccommodationPrice resolves the per-night price for an accommodation
// selection using the type's configured key rule
func (c *Catalog) AccommodationPrice(accType string, bedding bool, pax int) (int64, error) {
	t, ok := c.Accommodation[accType]
	if !ok {
		return c.miss(fmt.Sprintf("accommodation %q", accType))
	}
	key := t.PriceKey(bedding, pax)
	price, ok := t.Prices[key]
	if !ok {
		return c.miss(fmt.Sprintf("accommodation %q option %q", accType, key))
	}
	return price, nil
}

// AccommodationTypes returns the catalog's accommodation type names, sorted
func (c *Catalog) AccommodationTypes() []string {
	types := make([]string, 0, len(c.Accommodation))
	for name := range c.Accommodation {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// HasGround reports whether the catalog knows the named ground
func (c *Catalog) HasGround(name string) bool {
	for _, g := range c.Grounds {
		if g.Name == name {
			return true
		}
	}
	return false
}

// miss applies the lenient fallback or reports the unknown key
func (c *Catalog) miss(detail string) (int64, error) {
	if c.Lenient {
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKey, detail)
}
