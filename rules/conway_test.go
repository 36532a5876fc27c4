package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: got %v, expected %v", n, got, wantBorn)
		}

		wantSurvive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantSurvive {
			t.Fatalf("live cell with %d neighbors: got %v, expected %v", n, got, wantSurvive)
		}
	}
}
