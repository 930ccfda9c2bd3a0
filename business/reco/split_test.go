package reco

import (
	"testing"

	"salesreco/domain"

	"github.com/stretchr/testify/assert"
)

func ids(ss ...string) []domain.SaleID {
	out := make([]domain.SaleID, len(ss))
	for i, s := range ss {
		out[i] = domain.SaleID(s)
	}
	return out
}

func TestSplitSales_PreservesOngoingOrder(t *testing.T) {
	previous := domain.SalesRecommendation{
		Reco: domain.SalesList{
			Top:    ids("a", "b"),
			Bottom: ids("c"),
		},
	}

	sp := splitSales(ids("z", "a", "y", "c", "x"), previous)

	assert.Equal(t, ids("z", "y", "x"), sp.unseen)
	assert.Contains(t, sp.seenTop, domain.SaleID("a"))
	assert.Contains(t, sp.seenBottom, domain.SaleID("c"))
	assert.NotContains(t, sp.seen, domain.SaleID("b"), "b is no longer ongoing")
}

func TestSplitSales_SeenOnlyCountsOngoing(t *testing.T) {
	previous := domain.SalesRecommendation{
		Reco: domain.SalesList{Top: ids("a", "b", "c")},
	}

	sp := splitSales(ids("b"), previous)

	assert.Empty(t, sp.unseen)
	assert.Len(t, sp.seen, 1)
}

func TestNToTop_Cuts(t *testing.T) {
	list := nToTop(ids("a", "b"), ids("c", "d"), 3)
	assert.Equal(t, ids("a", "b", "c"), list.Top)
	assert.Equal(t, ids("d"), list.Bottom)
}

func TestNToTop_ZeroDropsEverything(t *testing.T) {
	list := nToTop(ids("a"), ids("b"), 0)
	assert.Empty(t, list.Top)
	assert.Equal(t, ids("a", "b"), list.Bottom)
}

func TestNToTop_OversizedNClamps(t *testing.T) {
	list := nToTop(ids("a"), ids("b"), 10)
	assert.Equal(t, ids("a", "b"), list.Top)
	assert.Empty(t, list.Bottom)
}

func TestEndWithSentinel_MovedToBottomEnd(t *testing.T) {
	sentinel := domain.SaleID("gift")

	top, bottom := endWithSentinel(ids("a", "gift", "b"), ids("c"), sentinel)
	assert.Equal(t, ids("a", "b"), top)
	assert.Equal(t, ids("c", "gift"), bottom)
}

func TestEndWithSentinel_DeduplicatesAcrossLists(t *testing.T) {
	sentinel := domain.SaleID("gift")

	top, bottom := endWithSentinel(ids("gift", "a"), ids("gift", "b", "gift"), sentinel)
	assert.Equal(t, ids("a"), top)
	assert.Equal(t, ids("b", "gift"), bottom)
}

func TestEndWithSentinel_AbsentStaysAbsent(t *testing.T) {
	top, bottom := endWithSentinel(ids("a"), ids("b"), "gift")
	assert.Equal(t, ids("a"), top)
	assert.Equal(t, ids("b"), bottom)
}

func TestUnseenFirst_UnrankedLead(t *testing.T) {
	got := unseenFirst(ids("n2", "r2", "n1", "r1"), ids("r1", "r2", "seen"))
	assert.Equal(t, ids("n2", "n1", "r1", "r2"), got)
}
