package service

import (
	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

type location struct {
	city, state string
}

// GroupByLocation builds one group per distinct (city, state) pair, in the
// order the pairs first appear in venues. upcoming maps venue id to its
// number of upcoming shows; missing ids count as zero.
func GroupByLocation(venues []models.Venue, upcoming map[uint]int64) []dto.LocationGroup {
	groups := []dto.LocationGroup{}
	index := make(map[location]int)

	for _, v := range venues {
		key := location{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.LocationGroup{City: v.City, State: v.State, Venues: []dto.Summary{}})
		}
		groups[i].Venues = append(groups[i].Venues, dto.Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return groups
}

func summarize[T any](items []T, id func(T) uint, name func(T) string, upcoming map[uint]int64) dto.SearchResult {
	data := make([]dto.Summary, 0, len(items))
	for _, item := range items {
		data = append(data, dto.Summary{ID: id(item), Name: name(item), NumUpcomingShows: upcoming[id(item)]})
	}
	return dto.SearchResult{Count: len(data), Data: data}
}
