package services

import "testing"

func TestGenerateDatePairs(t *testing.T) {
	pairs, err := GenerateDatePairs("2024-06-10", "2024-06-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pairs) != 49 {
		t.Fatalf("got %d pairs, want 49", len(pairs))
	}

	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			t.Fatalf("duplicate pair %q", p)
		}
		seen[p] = struct{}{}
	}

	if _, ok := seen["2024-06-10>2024-06-17"]; !ok {
		t.Fatal("pivot pair missing from grid")
	}
	if _, ok := seen["2024-06-07>2024-06-14"]; !ok {
		t.Fatal("minimum-offset pair missing from grid")
	}
	if _, ok := seen["2024-06-13>2024-06-20"]; !ok {
		t.Fatal("maximum-offset pair missing from grid")
	}
}

func TestGenerateDatePairsSpansMonthBoundary(t *testing.T) {
	pairs, err := GenerateDatePairs("2024-07-01", "2024-07-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, p := range pairs {
		if p == "2024-06-28>2024-06-29" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected offsets to roll back into June")
	}
}

func TestGenerateDatePairsRejectsMalformedDates(t *testing.T) {
	if _, err := GenerateDatePairs("10-06-2024", "2024-06-17"); err == nil {
		t.Fatal("expected error for malformed departure date")
	}
}

func TestSplitDatePair(t *testing.T) {
	depart, ret, ok := SplitDatePair("2024-06-10>2024-06-17")
	if !ok {
		t.Fatal("expected separator to be found")
	}
	if depart != "2024-06-10" || ret != "2024-06-17" {
		t.Fatalf("split = %q / %q", depart, ret)
	}

	if _, _, ok := SplitDatePair("2024-06-10"); ok {
		t.Fatal("expected split to fail without separator")
	}
}
