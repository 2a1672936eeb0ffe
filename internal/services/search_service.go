package services

import (
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/metrics"
)

// SearchService fronts the synthesizer and keeps the business counters.
type SearchService struct {
	engine     *engine.Engine
	metricsReg *metrics.MetricsRegistry
}

func NewSearchService(eng *engine.Engine, metricsReg *metrics.MetricsRegistry) *SearchService {
	return &SearchService{
		engine:     eng,
		metricsReg: metricsReg,
	}
}

// Search synthesizes offers for a query. Validation errors come back wrapped
// in engine.ErrInvalidQuery; anything resolvable produces a result.
func (svc *SearchService) Search(q engine.SearchQuery) (*engine.SearchResult, error) {
	result, err := svc.engine.Search(q)
	if err != nil {
		return nil, err
	}

	svc.metricsReg.SearchesTotal.Inc()
	svc.metricsReg.OffersGeneratedTotal.Add(float64(len(result.Flights)))

	dir := svc.engine.Directory()
	if _, fromOK := dir.Resolve(q.From); !fromOK {
		svc.metricsReg.FallbackRoutesTotal.Inc()
	} else if _, toOK := dir.Resolve(q.To); !toOK {
		svc.metricsReg.FallbackRoutesTotal.Inc()
	}

	return result, nil
}

// SeatMap generates the seat grid for one flight and cabin.
func (svc *SearchService) SeatMap(flightID string, class engine.CabinClass) ([]engine.Seat, error) {
	seats, err := svc.engine.GenerateSeats(flightID, class)
	if err != nil {
		return nil, err
	}
	svc.metricsReg.SeatMapsTotal.Inc()
	return seats, nil
}

// Advise runs the buy/wait model over one offer.
func (svc *SearchService) Advise(advisor engine.Advisor, f engine.Flight) engine.PricePrediction {
	prediction := advisor.Advise(f)
	svc.metricsReg.AdvisoriesTotal.WithLabelValues(string(prediction.Action)).Inc()
	return prediction
}
