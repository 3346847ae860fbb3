package crawler

import "testing"

func TestPartitionCoversRangeExactly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pages   int
		workers int
	}{
		{50, 20},
		{1, 1},
		{1, 20},
		{10, 3},
		{20, 20},
		{7, 2},
		{100, 7},
	}

	for _, tc := range cases {
		ranges := Partition(tc.pages, tc.workers)

		if len(ranges) > tc.workers {
			t.Fatalf("Partition(%d, %d) produced %d ranges, more than %d workers",
				tc.pages, tc.workers, len(ranges), tc.workers)
		}

		per := (tc.pages + tc.workers - 1) / tc.workers
		seen := make(map[int]bool)
		for i, r := range ranges {
			if r.Start > r.End {
				t.Fatalf("Partition(%d, %d) range %d is empty: %+v", tc.pages, tc.workers, i, r)
			}
			if length := r.End - r.Start + 1; length > per {
				t.Fatalf("Partition(%d, %d) range %+v exceeds ceil length %d", tc.pages, tc.workers, r, per)
			}
			for page := r.Start; page <= r.End; page++ {
				if seen[page] {
					t.Fatalf("Partition(%d, %d) assigned page %d twice", tc.pages, tc.workers, page)
				}
				seen[page] = true
			}
		}
		for page := 1; page <= tc.pages; page++ {
			if !seen[page] {
				t.Fatalf("Partition(%d, %d) never assigned page %d", tc.pages, tc.workers, page)
			}
		}
		if len(seen) != tc.pages {
			t.Fatalf("Partition(%d, %d) assigned %d pages, want %d", tc.pages, tc.workers, len(seen), tc.pages)
		}
	}
}

func TestPartitionOnlyLastRangeShort(t *testing.T) {
	t.Parallel()

	ranges := Partition(50, 20)
	per := 3 // ceil(50/20)
	for i, r := range ranges[:len(ranges)-1] {
		if length := r.End - r.Start + 1; length != per {
			t.Fatalf("range %d has length %d, want %d", i, length, per)
		}
	}
	last := ranges[len(ranges)-1]
	if last.End != 50 {
		t.Fatalf("last range ends at %d, want 50", last.End)
	}
}

func TestPartitionInvalidInput(t *testing.T) {
	t.Parallel()

	if got := Partition(0, 5); got != nil {
		t.Fatalf("Partition(0, 5) = %v, want nil", got)
	}
	if got := Partition(5, 0); got != nil {
		t.Fatalf("Partition(5, 0) = %v, want nil", got)
	}
}
