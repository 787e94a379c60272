package services

import (
	"sort"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// Ranking weights for candidate stations. Health dominates so that a
// frequently-reported station needs a much better rating to stay on top.
const (
	healthWeight = 0.6
	ratingWeight = 8.0
)

// stationCandidate is a station that qualifies as a single intermediate
// charging stop, with its two legs precomputed.
type stationCandidate struct {
	Station      *entities.Station
	LegToStation float64
	LegToDest    float64
	Score        float64
}

// rankCandidates filters stations to those plausibly on-route and orders
// them best-first.
//
// A station qualifies only when both legs are strictly shorter than the
// route itself and the detour via the station does not inflate the trip
// beyond routeKM*slack. The sort is stable: equal scores keep input order,
// so repeated checks over unchanged data recommend the same station.
func rankCandidates(stations []*entities.Station, origin, dest entities.Coordinates, routeKM, slack float64) []stationCandidate {
	var candidates []stationCandidate
	for _, s := range stations {
		if !s.Active {
			continue
		}
		legTo := haversineKM(origin.Latitude, origin.Longitude, s.Location.Latitude, s.Location.Longitude)
		legFrom := haversineKM(s.Location.Latitude, s.Location.Longitude, dest.Latitude, dest.Longitude)
		if legTo >= routeKM || legFrom >= routeKM {
			continue
		}
		if legTo+legFrom > routeKM*slack {
			continue
		}
		candidates = append(candidates, stationCandidate{
			Station:      s,
			LegToStation: legTo,
			LegToDest:    legFrom,
			Score:        healthWeight*s.HealthScore + ratingWeight*s.AvgRating,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
