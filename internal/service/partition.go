package service

import (
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

// IsUpcoming is the single boundary used for every past/upcoming decision:
// a show starting exactly at now counts as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// partition splits shows into past and upcoming, keeping input order inside
// each bucket. Both results are non-nil.
func partition[T any](shows []models.Show, now time.Time, project func(*models.Show) T) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for i := range shows {
		item := project(&shows[i])
		if IsUpcoming(shows[i].StartTime, now) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return past, upcoming
}

// PartitionVenueShows expects each show to carry its Artist.
func PartitionVenueShows(shows []models.Show, now time.Time) (past, upcoming []dto.ArtistAppearance) {
	return partition(shows, now, func(s *models.Show) dto.ArtistAppearance {
		out := dto.ArtistAppearance{ArtistID: s.ArtistID, StartTime: dto.FormatStartTime(s.StartTime)}
		if s.Artist != nil {
			out.ArtistName = s.Artist.Name
			out.ArtistImageLink = s.Artist.ImageLink
		}
		return out
	})
}

// PartitionArtistShows expects each show to carry its Venue.
func PartitionArtistShows(shows []models.Show, now time.Time) (past, upcoming []dto.VenueAppearance) {
	return partition(shows, now, func(s *models.Show) dto.VenueAppearance {
		out := dto.VenueAppearance{VenueID: s.VenueID, StartTime: dto.FormatStartTime(s.StartTime)}
		if s.Venue != nil {
			out.VenueName = s.Venue.Name
			out.VenueImageLink = s.Venue.ImageLink
		}
		return out
	})
}
