package view

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/web"
)

func TestDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", Datetime(ts, "full"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", Datetime(ts, "medium"))
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", Datetime("2019-05-21T21:30:00.000Z", ""))
	assert.Equal(t, "soon", Datetime("soon", "full"))
}

func TestRenderer_ParsesEmbeddedTemplates(t *testing.T) {
	r, err := NewRenderer(web.Templates())
	require.NoError(t, err)

	for _, name := range []string{
		"pages/home", "pages/venues", "pages/artists", "pages/shows",
		"pages/search_venues", "pages/search_artists", "pages/show_venue", "pages/show_artist",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist", "forms/new_show",
		"errors/404", "errors/500", "errors/error",
	} {
		assert.True(t, r.Has(name), name)
	}
}

func TestRenderer_VenuePage(t *testing.T) {
	r, err := NewRenderer(web.Templates())
	require.NoError(t, err)

	detail := dto.VenueDetail{
		ID:            1,
		Name:          "The Musical Hop",
		Genres:        []string{"Jazz"},
		City:          "San Francisco",
		State:         "CA",
		SeekingTalent: true,
		PastShows: []dto.ArtistAppearance{
			{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2019-05-21T21:30:00.000Z"},
		},
		UpcomingShows:  []dto.ArtistAppearance{},
		PastShowsCount: 1,
	}

	var buf bytes.Buffer
	err = r.Render(&buf, "pages/show_venue", &Page{Title: detail.Name, Data: detail, Flashes: []string{"hello"}}, nil)

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "The Musical Hop")
	assert.Contains(t, html, "1 Past Show")
	assert.Contains(t, html, "0 Upcoming Shows")
	assert.Contains(t, html, "Tuesday May, 21, 2019 at 9:30PM")
	assert.Contains(t, html, "Currently seeking talent")
	assert.Contains(t, html, "hello")
}

func TestRenderer_FormKeepsInputAndErrors(t *testing.T) {
	r, err := NewRenderer(web.Templates())
	require.NoError(t, err)

	page := &Page{
		Form:   dto.VenueForm{Name: "Hop <b>", State: "CA", Genres: []string{"Jazz"}},
		Errors: dto.FieldErrors{{Field: "phone", Message: "invalid phone number"}},
		Action: "/venues/create",
		CSRF:   "tok",
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "forms/new_venue", page, nil))

	html := buf.String()
	assert.Contains(t, html, `value="Hop &lt;b&gt;"`)
	assert.Contains(t, html, `<option value="CA" selected>`)
	assert.Contains(t, html, `<option value="Jazz" selected>`)
	assert.Contains(t, html, "invalid phone number")
	assert.Contains(t, html, `name="csrf_token" value="tok"`)
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer(fstest.MapFS{
		"layouts/main.html": {Data: []byte(`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"pages/home.html":   {Data: []byte(`{{define "content"}}home{{end}}`)},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "pages/home", nil, nil))
	assert.Equal(t, "home", buf.String())
	assert.Error(t, r.Render(&buf, "pages/missing", nil, nil))
}
