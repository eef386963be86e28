package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/domain"
)

// ValidateCatalogImport checks the import file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogImport(schema *CatalogImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for _, g := range schema.groups() {
		for i, it := range g.items {
			prefix := fmt.Sprintf("%s[%d]", g.kind, i)
			name, sector, itemErrs := ValidateCatalogItem(g.kind, it)
			for _, err := range itemErrs {
				errs = append(errs, fmt.Errorf("%s.%w", prefix, err))
			}
			if name == "" || (g.kind.HasSector() && sector == "") {
				continue
			}

			key := catalogKey(g.kind, name, sector)
			if seen[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate %q", prefix, name))
			}
			seen[key] = true
		}
	}

	return errs
}

// ValidateCatalogItem checks one catalog entry of the given kind: a name is
// required, only operators and equipment carry a sector, and only colors
// carry a cost, which must not be negative. It returns the trimmed name and
// the parsed sector.
func ValidateCatalogItem(kind domain.CatalogKind, it CatalogItemImport) (string, domain.Sector, []error) {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return "", "", []error{errors.New("name is required")}
	}

	var errs []error
	var sector domain.Sector
	if kind.HasSector() {
		s, err := domain.ParseSector(it.Sector)
		if err != nil {
			return name, "", []error{fmt.Errorf("sector: %w", err)}
		}
		sector = s
	} else if it.Sector != "" {
		errs = append(errs, fmt.Errorf("sector: %s have no sector", kind))
	}

	if it.CostPerKg != nil {
		if kind != domain.CatalogColors {
			errs = append(errs, errors.New("cost_per_kg: only cores have a cost"))
		} else if *it.CostPerKg < 0 {
			errs = append(errs, errors.New("cost_per_kg must not be negative"))
		}
	}
	return name, sector, errs
}

type catalogGroup struct {
	kind  domain.CatalogKind
	items []CatalogItemImport
}

func (c *CatalogImport) groups() []catalogGroup {
	return []catalogGroup{
		{domain.CatalogOperators, c.Operators},
		{domain.CatalogEquipment, c.Equipment},
		{domain.CatalogColors, c.Colors},
		{domain.CatalogOvens, c.Ovens},
		{domain.CatalogProjectTypes, c.ProjectTypes},
	}
}

// catalogKey identifies an entry the way the catalog's unique index does.
// Names compare case-insensitively.
func catalogKey(kind domain.CatalogKind, name string, sector domain.Sector) string {
	return string(kind) + "\x00" + strings.ToLower(strings.TrimSpace(name)) + "\x00" + string(sector)
}
