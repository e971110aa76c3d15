package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/little-lemon/database"
	"github.com/yeremiapane/little-lemon/models"
)

func names(items []models.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestFilterMenu_Scenarios(t *testing.T) {
	svc := seededMenu(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"exact name across all categories", "Pasta", CategoryAll, []string{"Pasta"}},
		{"empty query in one category", "", "Desserts", []string{"Lemon Dessert"}},
		{"no match", "zzz", CategoryAll, []string{}},
		{"empty query returns everything", "", CategoryAll, []string{"Greek Salad", "Bruschetta", "Grilled Fish", "Pasta", "Lemon Dessert"}},
		{"category narrows substring", "r", "Starters", []string{"Greek Salad", "Bruschetta"}},
		{"lowercase query matches", "pasta", CategoryAll, []string{"Pasta"}},
		{"unknown category", "", "Drinks", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FilterMenu(ctx, tt.query, tt.category)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterMenu_MatchesPredicateForAllPairs(t *testing.T) {
	svc := seededMenu(t)
	ctx := context.Background()

	queries := []string{"", "a", "e", "Le", "sal", "FISH", "Bru", "ss", "Pasta", "zzz", " "}
	categories := append(append([]string{}, Categories...), "Unknown")

	for _, q := range queries {
		for _, cat := range categories {
			var want []string
			for _, item := range database.MenuSeed {
				nameOK := strings.Contains(strings.ToLower(item.Name), strings.ToLower(q))
				catOK := cat == CategoryAll || item.Category == cat
				if nameOK && catOK {
					want = append(want, item.Name)
				}
			}
			if want == nil {
				want = []string{}
			}

			got := svc.FilterMenu(ctx, q, cat)
			assert.Equal(t, want, names(got), "query=%q category=%q", q, cat)
		}
	}
}

func TestFilterMenu_QueryErrorReturnsEmpty(t *testing.T) {
	// Tanpa EnsureSchema tabel menu belum ada.
	svc := NewMenuService(openDB(t, "empty.db"))

	got := svc.FilterMenu(context.Background(), "Pasta", CategoryAll)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterMenu_CancelledContextReturnsEmpty(t *testing.T) {
	svc := seededMenu(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, svc.FilterMenu(ctx, "", CategoryAll))
}

func TestFindByID(t *testing.T) {
	svc := seededMenu(t)
	ctx := context.Background()

	item, err := svc.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Grilled Fish", item.Name)
	assert.Equal(t, "$18.99", item.Price)
	assert.Equal(t, "Mains", item.Category)

	_, err = svc.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
