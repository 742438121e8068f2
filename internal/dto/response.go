package dto

import (
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

// StartTimeLayout is the UTC, millisecond precision layout used for show times
// handed to the presentation layer.
const StartTimeLayout = "2006-01-02T15:04:05.000Z"

func FormatStartTime(t time.Time) string {
	return t.UTC().Format(StartTimeLayout)
}

// Summary is the lightweight projection used by the directory and search results.
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type LocationGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistAppearance is a show seen from a venue's page.
type ArtistAppearance struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance is a show seen from an artist's page.
type VenueAppearance struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint               `json:"id"`
	Name               string             `json:"name"`
	Genres             []string           `json:"genres"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Phone              string             `json:"phone"`
	WebsiteLink        string             `json:"website_link"`
	FacebookLink       string             `json:"facebook_link"`
	SeekingTalent      bool               `json:"seeking_talent"`
	SeekingDescription string             `json:"seeking_description"`
	ImageLink          string             `json:"image_link"`
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

func ToVenueDetail(v *models.Venue, past, upcoming []ArtistAppearance) VenueDetail {
	return VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             nonNil(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

type ArtistDetail struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	WebsiteLink        string            `json:"website_link"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

func ToArtistDetail(a *models.Artist, past, upcoming []VenueAppearance) ArtistDetail {
	return ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             nonNil(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

type ArtistListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ToShowListing expects s to carry both its Venue and Artist.
func ToShowListing(s *models.Show) ShowListing {
	out := ShowListing{
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: FormatStartTime(s.StartTime),
	}
	if s.Venue != nil {
		out.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		out.ArtistName = s.Artist.Name
		out.ArtistImageLink = s.Artist.ImageLink
	}
	return out
}

// DeleteResponse is the JSON body answered to DELETE /venues/:id. Message is
// null when the delete failed.
type DeleteResponse struct {
	Success     bool    `json:"success"`
	Message     *string `json:"message"`
	RedirectURL string  `json:"redirect_url"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
