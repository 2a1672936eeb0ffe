package engine

import "strings"

// Match is the result of resolving a free-text location query.
type Match struct {
	Airport      Airport
	IsExactMatch bool
	// DistanceKm is the geodesic gap between the queried place and the
	// resolved airport. Zero for exact matches. Disclosure only, never
	// used for pricing.
	DistanceKm float64
}

// Directory is the read-only airport reference set. Built once, safe for
// concurrent lookups.
type Directory struct {
	airports []Airport
	byCode   map[string]int
	byCity   map[string]int
}

// NewDirectory builds a directory from reference records. Records without a
// code or coordinates are skipped; codes are normalized to upper case.
func NewDirectory(airports []Airport) *Directory {
	d := &Directory{
		byCode: make(map[string]int, len(airports)),
		byCity: make(map[string]int, len(airports)),
	}
	for _, a := range airports {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		a.City = strings.TrimSpace(a.City)
		if a.Code == "" || (a.Lat == 0 && a.Lng == 0) {
			continue
		}
		idx := len(d.airports)
		d.airports = append(d.airports, a)
		d.byCode[a.Code] = idx
		if a.City != "" {
			city := strings.ToLower(a.City)
			if _, dup := d.byCity[city]; !dup {
				d.byCity[city] = idx
			}
		}
	}
	return d
}

// DefaultDirectory returns a directory over the built-in world airport set.
func DefaultDirectory() *Directory {
	return NewDirectory(defaultAirports)
}

// Len reports how many airports the directory holds.
func (d *Directory) Len() int {
	return len(d.airports)
}

// Airports returns a copy of the reference set.
func (d *Directory) Airports() []Airport {
	out := make([]Airport, len(d.airports))
	copy(out, d.airports)
	return out
}

// ByCode looks up an airport by its code, case-insensitive.
func (d *Directory) ByCode(code string) (Airport, bool) {
	idx, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, false
	}
	return d.airports[idx], true
}

// Resolve maps a free-text location query to the best-matching airport.
// Exact code or city matches always win with a zero distance. Failing that,
// the query is located on the map via the place gazetteer or by string
// similarity, and the nearest airport is returned with the center-to-airport
// gap. Resolution is fully deterministic. The second return is false when no
// plausible candidate exists.
func (d *Directory) Resolve(query string) (*Match, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(d.airports) == 0 {
		return nil, false
	}

	if idx, ok := d.byCode[strings.ToUpper(q)]; ok {
		return &Match{Airport: d.airports[idx], IsExactMatch: true}, true
	}
	if idx, ok := d.byCity[q]; ok {
		return &Match{Airport: d.airports[idx], IsExactMatch: true}, true
	}

	if center, ok := placeCentroids[q]; ok {
		ap := d.nearest(center)
		return &Match{Airport: ap, DistanceKm: DistanceKm(center, ap.Coordinate())}, true
	}

	best, score := d.bestFuzzy(q)
	if score < minFuzzyScore {
		return nil, false
	}
	dist := nominalCityOffsetKm
	if c, ok := placeCentroids[strings.ToLower(best.City)]; ok {
		dist = DistanceKm(c, best.Coordinate())
	}
	return &Match{Airport: best, DistanceKm: dist}, true
}

// nominalCityOffsetKm stands in for the city-center gap when the matched
// city has no centroid on record, so every inexact match carries a non-zero
// disclosure distance.
const nominalCityOffsetKm = 20.0

// nearest returns the airport closest to a coordinate, ties broken by code.
func (d *Directory) nearest(c Coordinate) Airport {
	best := d.airports[0]
	bestDist := DistanceKm(c, best.Coordinate())
	for _, a := range d.airports[1:] {
		dist := DistanceKm(c, a.Coordinate())
		if dist < bestDist || (dist == bestDist && a.Code < best.Code) {
			best, bestDist = a, dist
		}
	}
	return best
}

// minFuzzyScore is the plausibility floor: anything scoring below it is
// treated as unresolvable rather than matched to a random airport.
const minFuzzyScore = 4

func (d *Directory) bestFuzzy(q string) (Airport, int) {
	var best Airport
	bestScore := -1
	for _, a := range d.airports {
		s := fuzzyScore(q, a)
		if s > bestScore || (s == bestScore && a.Code < best.Code) {
			best, bestScore = a, s
		}
	}
	return best, bestScore
}

// fuzzyScore rates how well a query matches an airport. Token hits on the
// city count double over country hits; a shared substring of at least three
// characters with the city name adds its length.
func fuzzyScore(q string, a Airport) int {
	city := strings.ToLower(a.City)
	country := strings.ToLower(a.Country)
	code := strings.ToLower(a.Code)

	score := 0
	for _, tok := range strings.Fields(q) {
		switch {
		case tok == code:
			score += 8
		case strings.Contains(city, tok):
			score += 2 * len(tok)
		case strings.Contains(country, tok):
			score += len(tok)
		}
	}
	if l := longestCommonSubstring(q, city); l >= 3 {
		score += l
	}
	return score
}

func longestCommonSubstring(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}
