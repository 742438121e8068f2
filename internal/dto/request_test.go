package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "123-123-1234",
		ImageLink:     "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
		Genres:        []string{"Jazz", "Reggae", "Folk"},
		FacebookLink:  "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:   "https://www.themusicalhop.com",
		SeekingTalent: true,
	}
}

func TestVenueForm_Validate_OK(t *testing.T) {
	assert.Empty(t, validVenueForm().Validate())
}

func TestVenueForm_Validate_ReportsEveryField(t *testing.T) {
	form := VenueForm{
		State:        "ZZ",
		Phone:        "12-34",
		Genres:       []string{"Polka"},
		ImageLink:    "ftp://images.example.com/a.png",
		FacebookLink: "https://twitter.com/hop",
		WebsiteLink:  "not a url",
	}

	errs := form.Validate()

	for _, field := range []string{"name", "city", "state", "address", "phone", "genres", "image_link", "facebook_link", "website_link"} {
		assert.True(t, errs.Has(field), "expected error on %s", field)
	}
	assert.False(t, errs.Has("seeking_description"))

	for i := 1; i < len(errs); i++ {
		assert.Less(t, errs[i-1].Field, errs[i].Field)
	}
}

func TestVenueForm_Validate_OptionalLinksMayBeEmpty(t *testing.T) {
	form := validVenueForm()
	form.ImageLink = ""
	form.FacebookLink = ""
	form.WebsiteLink = ""

	assert.Empty(t, form.Validate())
}

func TestVenueForm_Validate_FacebookPrefix(t *testing.T) {
	form := validVenueForm()
	form.FacebookLink = "https://facebook.com/TheMusicalHop"

	errs := form.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "facebook_link", errs[0].Field)
	assert.Contains(t, errs[0].Message, "https://www.facebook.com/")
	assert.Equal(t, []string{"Error in facebook_link: " + errs[0].Message}, errs.Messages())
}

func TestVenueForm_ApplyReplacesMutableFields(t *testing.T) {
	venue := &models.Venue{ID: 7, Name: "Old", SeekingTalent: true, Genres: []string{"Pop"}}
	form := validVenueForm()
	form.Name = "  The Dueling Pianos Bar  "
	form.SeekingTalent = false

	form.Apply(venue)

	assert.Equal(t, uint(7), venue.ID)
	assert.Equal(t, "The Dueling Pianos Bar", venue.Name)
	assert.False(t, venue.SeekingTalent)
	assert.Equal(t, []string(form.Genres), []string(venue.Genres))
	assert.Equal(t, "The Dueling Pianos Bar", VenueFormFrom(venue).Name)
}

func TestArtistForm_Validate(t *testing.T) {
	form := ArtistForm{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326.123.5000",
		Genres: []string{"Rock n Roll"},
	}
	assert.Empty(t, form.Validate())

	form.Phone = "326-123-500"
	form.Genres = nil
	errs := form.Validate()
	assert.True(t, errs.Has("phone"))
	assert.True(t, errs.Has("genres"))
	assert.Len(t, errs, 2)
}

func TestArtistForm_RoundTripsThroughModel(t *testing.T) {
	artist := &models.Artist{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       []string{"Jazz"},
		SeekingVenue: true,
	}

	form := ArtistFormFrom(artist)
	copyOf := &models.Artist{}
	form.Apply(copyOf)

	assert.Equal(t, artist.Name, copyOf.Name)
	assert.True(t, copyOf.SeekingVenue)
	assert.Equal(t, []string{"Jazz"}, []string(copyOf.Genres))
}

func TestShowForm_Validate(t *testing.T) {
	form := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2035-04-01 20:00:00"}
	require.Empty(t, form.Validate())

	show, err := form.ToModel()
	require.NoError(t, err)
	assert.Equal(t, uint(4), show.ArtistID)
	assert.Equal(t, uint(1), show.VenueID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), show.StartTime)
}

func TestShowForm_Validate_AcceptsOtherLayouts(t *testing.T) {
	for _, ts := range []string{"2035-04-01T20:00", "2035-04-01T20:00:00Z", "2035-04-01T22:00:00+02:00"} {
		form := ShowForm{ArtistID: "1", VenueID: "1", StartTime: ts}
		assert.Empty(t, form.Validate(), ts)

		show, err := form.ToModel()
		require.NoError(t, err)
		assert.Equal(t, 20, show.StartTime.Hour(), ts)
	}
}

func TestShowForm_Validate_Errors(t *testing.T) {
	errs := ShowForm{ArtistID: "abc", VenueID: "0", StartTime: "next friday"}.Validate()

	assert.Len(t, errs, 3)
	assert.True(t, errs.Has("artist_id"))
	assert.True(t, errs.Has("venue_id"))
	assert.True(t, errs.Has("start_time"))

	errs = ShowForm{}.Validate()
	assert.Len(t, errs, 3)
}

func TestCheckbox_UnmarshalParam(t *testing.T) {
	cases := map[string]bool{"y": true, "on": true, "true": true, "": false, "false": false, "off": false}
	for in, want := range cases {
		var cb Checkbox
		require.NoError(t, cb.UnmarshalParam(in))
		assert.Equal(t, want, bool(cb), in)
	}
}
