package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

func lead(domain, title string, score int) model.ClassifiedLead {
	return model.ClassifiedLead{Domain: domain, Title: title, Score: score}
}

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	leads := []model.ClassifiedLead{
		lead("acme.com", "headline", 3),
		lead("acme.com", "headline", 9), // duplicate, higher score, still dropped
		lead("acme.com", "other headline", 1),
	}

	out := Dedupe(leads)

	assert.Len(t, out, 2)
	assert.Equal(t, 3, out[0].Score)
	assert.Equal(t, "other headline", out[1].Title)
}

func TestDedupe_SameTitleDifferentDomain(t *testing.T) {
	leads := []model.ClassifiedLead{
		lead("acme.com", "headline", 1),
		lead("globex.com", "headline", 2),
	}

	assert.Len(t, Dedupe(leads), 2)
}

func TestDedupe_EmptyInput(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestRank_DescendingByScore(t *testing.T) {
	leads := []model.ClassifiedLead{
		lead("a.com", "t1", 2),
		lead("b.com", "t2", 9),
		lead("c.com", "t3", 5),
	}

	out := Rank(leads)

	assert.Equal(t, []int{9, 5, 2}, []int{out[0].Score, out[1].Score, out[2].Score})
}

func TestRank_StableOnTies(t *testing.T) {
	// Equal scores keep their relative pre-sort order; tests must not assume
	// alphabetical tie-breaking.
	leads := []model.ClassifiedLead{
		lead("zeta.com", "t1", 5),
		lead("alpha.com", "t2", 5),
		lead("mid.com", "t3", 7),
	}

	out := Rank(leads)

	assert.Equal(t, "mid.com", out[0].Domain)
	assert.Equal(t, "zeta.com", out[1].Domain)
	assert.Equal(t, "alpha.com", out[2].Domain)
}

func TestDedupeRank_Idempotent(t *testing.T) {
	leads := []model.ClassifiedLead{
		lead("a.com", "t", 4),
		lead("b.com", "t", 4),
		lead("a.com", "t", 4),
		lead("c.com", "u", 8),
	}

	once := Rank(Dedupe(leads))
	onceCopy := append([]model.ClassifiedLead(nil), once...)
	twice := Rank(Dedupe(onceCopy))

	assert.Equal(t, once, twice)
}
