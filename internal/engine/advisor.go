package engine

import "math"

// Advisor classifies a single offer as a buy-now or wait opportunity. It is
// the seam where a genuine predictive model would plug in; the heuristic
// below stands in for one.
type Advisor interface {
	Advise(f Flight) PricePrediction
}

// HeuristicAdvisor is a deterministic stand-in model: its verdict depends
// only on the offer's price and a stable pseudo-random factor derived from
// the digits of the offer id, so the same offer always gets the same advice.
type HeuristicAdvisor struct{}

var _ Advisor = HeuristicAdvisor{}

// Advise applies the decision table top to bottom, first match wins:
// cheap fares are an immediate buy, a high id factor predicts a rise, a low
// factor on an expensive fare suggests waiting, anything else is fair value.
func (HeuristicAdvisor) Advise(f Flight) PricePrediction {
	factor := idFactor(f.ID)

	if f.Price < 4000 {
		return PricePrediction{
			Action:           ActionBuyNow,
			Confidence:       95,
			Reason:           "Prices are at historic lows for this route.",
			PredictedSavings: intPtr(0),
		}
	}

	if factor > 0.7 {
		return PricePrediction{
			Action:           ActionRisingSoon,
			Confidence:       85,
			Reason:           "Demand is high. Prices expected to rise by ~15% in 2 days.",
			PredictedSavings: intPtr(int(math.Round(float64(f.Price) * 0.15))),
		}
	}
	if factor < 0.3 && f.Price > 6000 {
		return PricePrediction{
			Action:           ActionWait,
			Confidence:       70,
			Reason:           "Historical data suggests prices may drop next Tuesday.",
			PredictedSavings: intPtr(int(math.Round(float64(f.Price) * 0.10))),
		}
	}

	return PricePrediction{
		Action:     ActionBuyNow,
		Confidence: 80,
		Reason:     "Fair market value. Unlikely to drop further.",
	}
}

// idFactor maps the numeric digits of an offer id to a stable value in
// [0.0, 0.9]: the last digit over ten. Ids without digits map to 0.
func idFactor(id string) float64 {
	last := -1
	for _, r := range id {
		if r >= '0' && r <= '9' {
			last = int(r - '0')
		}
	}
	if last < 0 {
		return 0
	}
	return float64(last) / 10
}

func intPtr(v int) *int {
	return &v
}
