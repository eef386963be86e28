package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

// resolveEntryID accepts a full entry ID or a unique prefix of one,
// including inactive entries.
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("entry ID is required")
	}
	entries, err := app.Entries.List(ctx, repository.EntryFilter{IncludeInactive: true})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return matchID("entry", ids, input)
}

// resolveCatalogID resolves a catalog ID prefix among entries of any kind.
func resolveCatalogID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("catalog ID is required")
	}
	entries, err := app.Catalog.List(ctx, "", true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(entries))
	for i, c := range entries {
		ids[i] = c.ID
	}
	return matchID("catalog entry", ids, input)
}

func matchID(what string, ids []string, input string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", what, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

// parseSectorFlag parses an optional --sector value; blank means all sectors.
func parseSectorFlag(s string) (domain.Sector, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return domain.ParseSector(s)
}
