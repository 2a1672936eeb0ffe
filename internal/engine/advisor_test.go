package engine

import "testing"

func TestAdvise_CheapFareIsAlwaysBuyNow(t *testing.T) {
	adv := HeuristicAdvisor{}

	// Price under 4000 wins regardless of the id-derived factor.
	p := adv.Advise(Flight{ID: "flight-1699999999-3", Price: 3500})

	if p.Action != ActionBuyNow {
		t.Errorf("Expected BUY_NOW, got %s", p.Action)
	}
	if p.Confidence != 95 {
		t.Errorf("Expected confidence 95, got %d", p.Confidence)
	}
	if p.PredictedSavings == nil || *p.PredictedSavings != 0 {
		t.Errorf("Expected predicted savings 0, got %v", p.PredictedSavings)
	}
}

func TestAdvise_HighFactorPredictsRise(t *testing.T) {
	adv := HeuristicAdvisor{}

	p := adv.Advise(Flight{ID: "flight-1700000000-8", Price: 5000})

	if p.Action != ActionRisingSoon {
		t.Errorf("Expected RISING_SOON, got %s", p.Action)
	}
	if p.Confidence != 85 {
		t.Errorf("Expected confidence 85, got %d", p.Confidence)
	}
	if p.PredictedSavings == nil || *p.PredictedSavings != 750 {
		t.Errorf("Expected predicted savings 750, got %v", p.PredictedSavings)
	}
}

func TestAdvise_LowFactorOnExpensiveFareSuggestsWaiting(t *testing.T) {
	adv := HeuristicAdvisor{}

	p := adv.Advise(Flight{ID: "flight-1700000000-1", Price: 7000})

	if p.Action != ActionWait {
		t.Errorf("Expected WAIT, got %s", p.Action)
	}
	if p.Confidence != 70 {
		t.Errorf("Expected confidence 70, got %d", p.Confidence)
	}
	if p.PredictedSavings == nil || *p.PredictedSavings != 700 {
		t.Errorf("Expected predicted savings 700, got %v", p.PredictedSavings)
	}
}

func TestAdvise_FairValueFallback(t *testing.T) {
	adv := HeuristicAdvisor{}

	p := adv.Advise(Flight{ID: "flight-1700000000-5", Price: 5000})

	if p.Action != ActionBuyNow {
		t.Errorf("Expected BUY_NOW fallback, got %s", p.Action)
	}
	if p.Confidence != 80 {
		t.Errorf("Expected confidence 80, got %d", p.Confidence)
	}
	if p.PredictedSavings != nil {
		t.Errorf("Fallback must not report savings, got %d", *p.PredictedSavings)
	}
}

func TestAdvise_LowFactorOnModeratedFareStillBuyNow(t *testing.T) {
	adv := HeuristicAdvisor{}

	// Factor below 0.3 but price not above 6000: the wait rule must not fire.
	p := adv.Advise(Flight{ID: "flight-1700000000-1", Price: 5000})
	if p.Action != ActionBuyNow || p.Confidence != 80 {
		t.Errorf("Expected fair-value BUY_NOW, got %s/%d", p.Action, p.Confidence)
	}
}

func TestAdvise_Deterministic(t *testing.T) {
	adv := HeuristicAdvisor{}

	f := Flight{ID: "flight-1700000000-8", Price: 9000}
	first := adv.Advise(f)
	for i := 0; i < 5; i++ {
		if got := adv.Advise(f); got.Action != first.Action || got.Confidence != first.Confidence {
			t.Fatal("Advise must be deterministic for the same offer")
		}
	}
}

func TestIDFactor(t *testing.T) {
	cases := []struct {
		id   string
		want float64
	}{
		{"flight-1699999999-3", 0.3},
		{"flight-1700000000-8", 0.8},
		{"no-digits-here", 0},
		{"", 0},
		{"f9", 0.9},
	}
	for _, c := range cases {
		if got := idFactor(c.id); got != c.want {
			t.Errorf("idFactor(%q) = %f, want %f", c.id, got, c.want)
		}
	}
}
