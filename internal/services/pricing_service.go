package services

import (
	"fmt"

	"github.com/canaville/resort-booking-backend/internal/catalog"
	"github.com/canaville/resort-booking-backend/internal/models"
)

// CostBreakdown itemises the total cost of a booking request
type CostBreakdown struct {
	ActivityCost      int64 `json:"activity_cost"`
	FoodCost          int64 `json:"food_cost"`
	DrinkCost         int64 `json:"drink_cost"`
	MenuCost          int64 `json:"menu_cost"`
	AccommodationCost int64 `json:"accommodation_cost"`
	Nights            int   `json:"nights"`
	Total             int64 `json:"total"`
}

// PricingService computes booking costs from the injected catalog. It holds
// no state beyond the catalog, so the same request always prices the same.
type PricingService struct {
	catalog *catalog.Catalog
}

// NewPricingService creates a new PricingService
func NewPricingService(cat *catalog.Catalog) *PricingService {
	return &PricingService{catalog: cat}
}

// TotalCost prices every selection in the request and returns the breakdown.
// Unknown catalog keys fail unless the catalog is lenient.
func (s *PricingService) TotalCost(req *models.CreateReservationRequest) (*CostBreakdown, error) {
	breakdown := &CostBreakdown{
		Nights: models.Nights(req.CheckInDate, req.CheckOutDate),
	}

	for _, activity := range req.Activities {
		price, err := s.catalog.ActivityPrice(activity.Name, activity.Option)
		if err != nil {
			return nil, err
		}
		people := activity.NumberOfPeople
		if people < 1 {
			people = 1
		}
		breakdown.ActivityCost += price * int64(people)
	}

	// Food and drinks are toggled selections, not quantities; a repeated
	// name charges once.
	for _, name := range uniqueNames(req.Food) {
		price, err := s.catalog.FoodPrice(name)
		if err != nil {
			return nil, err
		}
		breakdown.FoodCost += price
	}

	for _, name := range uniqueNames(req.Drinks) {
		price, err := s.catalog.DrinkPrice(name)
		if err != nil {
			return nil, err
		}
		breakdown.DrinkCost += price
	}

	for _, item := range req.MenuItems {
		price, err := s.catalog.MenuPrice(item.Name)
		if err != nil {
			return nil, err
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("menu item %q has invalid quantity %d", item.Name, item.Quantity)
		}
		breakdown.MenuCost += price * int64(item.Quantity)
	}

	for _, acc := range req.Accommodation {
		price, err := s.catalog.AccommodationPrice(acc.Type, acc.Bedding, acc.Pax)
		if err != nil {
			return nil, err
		}
		breakdown.AccommodationCost += price * int64(breakdown.Nights)
	}

	breakdown.Total = breakdown.ActivityCost + breakdown.FoodCost + breakdown.DrinkCost +
		breakdown.MenuCost + breakdown.AccommodationCost
	return breakdown, nil
}

// ResolveMenuSelections returns the request's menu items with unit prices
// resolved from the catalog, ready for persistence.
func (s *PricingService) ResolveMenuSelections(items []models.MenuSelection) (models.MenuSelections, error) {
	resolved := make(models.MenuSelections, 0, len(items))
	for _, item := range items {
		price, err := s.catalog.MenuPrice(item.Name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, models.MenuSelection{
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}
	return resolved, nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}
