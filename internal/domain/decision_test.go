package domain

import "testing"

func TestParseSwipeAction(t *testing.T) {
	cases := []struct {
		input   string
		want    SwipeAction
		wantErr bool
	}{
		{"LIKE", ActionLike, false},
		{"like", ActionLike, false},
		{" Pass ", ActionPass, false},
		{"SUPERLIKE", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSwipeAction(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSwipeAction(%q) = %v, want error", tc.input, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseSwipeAction(%q) = %v, %v, want %v", tc.input, got, err, tc.want)
		}
	}
}

func TestPairKeyCanonicalOrder(t *testing.T) {
	if lo, hi := PairKey(7, 3); lo != 3 || hi != 7 {
		t.Errorf("PairKey(7, 3) = (%d, %d), want (3, 7)", lo, hi)
	}
	if lo, hi := PairKey(3, 7); lo != 3 || hi != 7 {
		t.Errorf("PairKey(3, 7) = (%d, %d), want (3, 7)", lo, hi)
	}
}

func TestCounterpartID(t *testing.T) {
	decision := &SwipeDecision{ActorID: 1, TargetID: 2}

	if id, ok := decision.CounterpartID(1); !ok || id != 2 {
		t.Errorf("CounterpartID(1) = %d, %v, want 2, true", id, ok)
	}
	if id, ok := decision.CounterpartID(2); !ok || id != 1 {
		t.Errorf("CounterpartID(2) = %d, %v, want 1, true", id, ok)
	}
	if _, ok := decision.CounterpartID(3); ok {
		t.Error("CounterpartID(3) must report false for an uninvolved user")
	}
}
