package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrSeedProductsCommandIsNotConstructed = errors.New(
	"SeedProductsCommand must be created via NewSeedProductsCommand constructor",
)

// CatalogueItem is one product to seed.
type CatalogueItem struct {
	Name        string
	Description string
}

// DefaultCatalogue is inserted into an empty products table on startup.
var DefaultCatalogue = []CatalogueItem{
	{Name: "HP laptop", Description: "This is HP laptop"},
	{Name: "lenovo laptop", Description: "This is lenovo"},
	{Name: "Car", Description: "This is Car"},
	{Name: "Bike", Description: "This is Bike"},
}

// SeedProductsCommand fills an empty catalogue.
type SeedProductsCommand struct { //nolint:recvcheck //using for validation
	items []CatalogueItem

	guard guard.ConstructorGuard
}

func NewSeedProductsCommand(items []CatalogueItem) (SeedProductsCommand, error) {
	if len(items) == 0 {
		return SeedProductsCommand{}, errs.NewValueIsRequiredError("catalogue items")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return SeedProductsCommand{}, errs.NewValueIsRequiredError("catalogue item name")
		}
	}

	return SeedProductsCommand{
		items: append([]CatalogueItem(nil), items...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SeedProductsCommand) Validate() error {
	return c.guard.Validate(ErrSeedProductsCommandIsNotConstructed)
}

func (c SeedProductsCommand) Items() []CatalogueItem {
	return c.items
}
