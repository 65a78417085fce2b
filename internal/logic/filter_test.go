package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"tooldeck/internal/domain"
)

var sampleEntries = []domain.Entry{
	{Name: "GPT-4 Playground", Category: "Writing", Description: "Chat with a large model", Link: "https://a.example"},
	{Name: "Copilot", Category: "Code", Description: "Pair programmer"},
	{Name: "Midjourney", Category: "Image", Description: "Pictures from prompts"},
	{Name: "Lowercase", Category: "ai"},
	{Name: "Uppercase", Category: "AI"},
	{Name: "Nameless category"},
	{Description: "only a description mentioning gpt"},
}

func names(entries []domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		entry    domain.Entry
		term     string
		category string
		want     bool
	}{
		{"empty predicate matches everything", domain.Entry{}, "", "", true},
		{"name substring", sampleEntries[0], "playground", "", true},
		{"description substring", sampleEntries[1], "pair", "", true},
		{"category substring", sampleEntries[2], "imag", "", true},
		{"no field contains term", sampleEntries[2], "music", "", false},
		{"absent fields do not match", domain.Entry{}, "x", "", false},
		{"category exact", sampleEntries[1], "", "Code", true},
		{"category mismatch", sampleEntries[1], "", "Writing", false},
		{"category is case sensitive", sampleEntries[3], "", "AI", false},
		{"both constraints", sampleEntries[0], "gpt", "Writing", true},
		{"search passes category fails", sampleEntries[0], "gpt", "Code", false},
		{"absent category never equals a chosen one", sampleEntries[5], "", "General", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.entry, tt.term, tt.category))
		})
	}
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	entry := domain.Entry{Name: "GPT-4"}
	assert.True(t, Matches(entry, "gpt", ""))
	assert.Equal(t, Matches(entry, "gpt", ""), Matches(entry, "GPT", ""))
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "gpt 4", NormalizeSearch("  GPT 4\t"))
	assert.Equal(t, "", NormalizeSearch("   "))
}

func TestFilterIsNotCumulative(t *testing.T) {
	narrow := Filter(sampleEntries, "copilot", "")
	require.Equal(t, []string{"Copilot"}, names(narrow))

	// Widening recomputes from the full list, not from the narrowed one
	wide := Filter(sampleEntries, "", "")
	if diff := cmp.Diff(sampleEntries, wide); diff != "" {
		t.Errorf("widened filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter(sampleEntries, "gpt", "")
	assert.Equal(t, []string{"GPT-4 Playground", ""}, names(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	all := append([]domain.Entry(nil), sampleEntries...)
	_ = Filter(all, "code", "Code")
	assert.Equal(t, sampleEntries, all)
}

func TestDeriveCategories(t *testing.T) {
	feed := []domain.Entry{{Category: "Writing"}, {Category: "Code"}, {Category: "Writing"}}
	assert.Equal(t, []string{"Code", "Writing"}, DeriveCategories(feed))

	assert.Equal(t, []string{"AI", "Code", "Image", "Writing", "ai"}, DeriveCategories(sampleEntries))
	assert.Empty(t, DeriveCategories(nil))
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions([]string{"Code", "Writing"})
	require.Len(t, opts, 3)
	assert.Equal(t, CategoryOption{Value: "", Label: AllCategoriesLabel}, opts[0])
	assert.Equal(t, "Writing", opts[2].Value)
	assert.Equal(t, AllCategoriesLabel, CategoryLabel(""))
	assert.Equal(t, "Code", CategoryLabel("Code"))
}

func entryGen() *rapid.Generator[domain.Entry] {
	field := rapid.SampledFrom([]string{"", "GPT", "gpt-4", "Code", "code", "Writing", "Image <b>", "ai", "AI"})
	return rapid.Custom(func(t *rapid.T) domain.Entry {
		return domain.Entry{
			Name:        field.Draw(t, "name"),
			Category:    field.Draw(t, "category"),
			Description: field.Draw(t, "description"),
		}
	})
}

func TestFilterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		all := rapid.SliceOf(entryGen()).Draw(t, "all")
		term := NormalizeSearch(rapid.SampledFrom([]string{"", "gpt", "CODE", " ai ", "x"}).Draw(t, "term"))
		category := rapid.SampledFrom([]string{"", "Code", "AI", "ai", "Writing"}).Draw(t, "category")

		visible := Filter(all, term, category)

		// Deterministic
		if diff := cmp.Diff(visible, Filter(all, term, category)); diff != "" {
			t.Fatalf("filter not deterministic: %s", diff)
		}

		// Order-preserving subset containing exactly the matching entries
		i := 0
		for _, e := range all {
			if Matches(e, term, category) {
				if i >= len(visible) || visible[i] != e {
					t.Fatalf("visible is not the ordered matching subset")
				}
				i++
			}
		}
		if i != len(visible) {
			t.Fatalf("visible has %d extra entries", len(visible)-i)
		}

		// Category results really carry that category
		for _, e := range visible {
			if category != "" && e.Category != category {
				t.Fatalf("entry %q leaked through category %q", e.Category, category)
			}
		}
	})
}

func TestMatchesCaseFoldProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := entryGen().Draw(t, "entry")
		term := rapid.StringMatching(`[a-zA-Z\-]{0,4}`).Draw(t, "term")
		lower := Matches(e, NormalizeSearch(term), "")
		upper := Matches(e, term, "")
		if lower != upper {
			t.Fatalf("case changed the result for %q", term)
		}
	})
}
