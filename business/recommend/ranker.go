package recommend

import "sort"

// rankCandidates imposes the strict total order: combined score descending,
// product id ascending on exact ties. The seed parameter is accepted because
// cursors carry one, but the order is fully deterministic and seed-independent;
// consulting it here would break pagination stability for already-issued
// cursors.
func rankCandidates(cands []candidateScore, seed int) {
	_ = seed
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].combined != cands[j].combined {
			return cands[i].combined > cands[j].combined
		}
		return cands[i].productID < cands[j].productID
	})
}

// pageBounds clips [offset, offset+k) to the ranked set. offset past the end
// yields an empty, still-valid page.
func pageBounds(total, offset, k int) (int, int) {
	if offset >= total {
		return total, total
	}
	end := offset + k
	if end > total {
		end = total
	}
	return offset, end
}
