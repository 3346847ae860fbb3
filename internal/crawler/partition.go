package crawler

// Partition splits pages [1..pages] into up to workers contiguous ranges.
// Each range spans ceil(pages/workers) pages; only the final range may be
// shorter. The union of the ranges is exactly [1..pages] with no overlaps.
func Partition(pages, workers int) []PageRange {
	if pages < 1 || workers < 1 {
		return nil
	}

	per := (pages + workers - 1) / workers
	ranges := make([]PageRange, 0, workers)
	for start := 1; start <= pages; start += per {
		end := start + per - 1
		if end > pages {
			end = pages
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	return ranges
}
