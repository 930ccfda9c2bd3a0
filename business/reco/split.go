package reco

import "salesreco/domain"

// salesSplit partitions the ongoing sales into what the user's previous
// recommendation already showed and what is new to them.
type salesSplit struct {
	seenTop    map[domain.SaleID]struct{}
	seenBottom map[domain.SaleID]struct{}
	seen       map[domain.SaleID]struct{}
	unseen     []domain.SaleID // preserves ongoing order
}

func splitSales(ongoing []domain.SaleID, previous domain.SalesRecommendation) salesSplit {
	ongoingSet := idSet(ongoing)

	sp := salesSplit{
		seenTop:    make(map[domain.SaleID]struct{}),
		seenBottom: make(map[domain.SaleID]struct{}),
		seen:       make(map[domain.SaleID]struct{}),
	}
	for _, s := range previous.Reco.Top {
		if _, ok := ongoingSet[s]; ok {
			sp.seenTop[s] = struct{}{}
			sp.seen[s] = struct{}{}
		}
	}
	for _, s := range previous.Reco.Bottom {
		if _, ok := ongoingSet[s]; ok {
			sp.seenBottom[s] = struct{}{}
			sp.seen[s] = struct{}{}
		}
	}
	for _, s := range ongoing {
		if _, ok := sp.seen[s]; !ok {
			sp.unseen = append(sp.unseen, s)
		}
	}
	return sp
}

// nToTop concatenates top and bottom and cuts the union after n
// elements. This is the single mechanism deciding how many sales show
// in the top section, whatever produced the candidate lists. n may be
// zero (everything drops to the bottom) or exceed len(top) (sales are
// pulled up from the bottom).
func nToTop(top, bottom []domain.SaleID, n int) domain.SalesList {
	union := make([]domain.SaleID, 0, len(top)+len(bottom))
	union = append(union, top...)
	union = append(union, bottom...)
	if n < 0 {
		n = 0
	}
	if n > len(union) {
		n = len(union)
	}
	return domain.SalesList{
		Top:    union[:n:n],
		Bottom: union[n:],
	}
}

// endWithSentinel strips the sentinel sale from both candidate lists
// and, if it occurred anywhere, re-appends it exactly once at the end
// of bottom. The sentinel must never surface in the top section.
func endWithSentinel(top, bottom []domain.SaleID, sentinel domain.SaleID) ([]domain.SaleID, []domain.SaleID) {
	present := false

	outTop := make([]domain.SaleID, 0, len(top))
	for _, s := range top {
		if s == sentinel {
			present = true
			continue
		}
		outTop = append(outTop, s)
	}

	outBottom := make([]domain.SaleID, 0, len(bottom)+1)
	for _, s := range bottom {
		if s == sentinel {
			present = true
			continue
		}
		outBottom = append(outBottom, s)
	}

	if present {
		outBottom = append(outBottom, sentinel)
	}
	return outTop, outBottom
}

// ---- small set helpers ----

func idSet(ids []domain.SaleID) map[domain.SaleID]struct{} {
	set := make(map[domain.SaleID]struct{}, len(ids))
	for _, s := range ids {
		set[s] = struct{}{}
	}
	return set
}

// keepIn filters ids down to members of the set, preserving order.
func keepIn(ids []domain.SaleID, set map[domain.SaleID]struct{}) []domain.SaleID {
	out := make([]domain.SaleID, 0, len(ids))
	for _, s := range ids {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// dropID removes every occurrence of id, preserving order.
func dropID(ids []domain.SaleID, id domain.SaleID) []domain.SaleID {
	out := make([]domain.SaleID, 0, len(ids))
	for _, s := range ids {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}
