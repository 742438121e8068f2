package dto

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/validation"
)

// FieldError is one failed check on one submitted form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is ordered by field name. An empty list means the input is valid.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}

// Messages renders the errors the way they are flashed to the user.
func (fe FieldErrors) Messages() []string {
	out := make([]string, len(fe))
	for i, e := range fe {
		out[i] = "Error in " + e.Field + ": " + e.Message
	}
	return out
}

// Has reports whether field failed validation.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func toFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var errs ozzo.Errors
	if !errors.As(err, &errs) {
		return FieldErrors{{Field: "form", Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(errs))
	for field, e := range errs {
		out = append(out, FieldError{Field: field, Message: e.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Checkbox binds HTML checkbox values. Browsers send "on" (or the value
// attribute) when checked and nothing when unchecked.
type Checkbox bool

func (cb *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "", "0", "false", "n", "no", "off":
		*cb = false
	default:
		*cb = true
	}
	return nil
}

var linkRules = []ozzo.Rule{is.URL.Error("must be a valid URL"), validation.LinkRule}

type VenueForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingTalent      Checkbox `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f VenueForm) Validate() FieldErrors {
	f.normalize()
	return toFieldErrors(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Name, ozzo.Required.Error("this field is required")),
		ozzo.Field(&f.City, ozzo.Required.Error("this field is required")),
		ozzo.Field(&f.State,
			ozzo.Required.Error("this field is required"),
			ozzo.In(models.AsInterfaces(models.States)...).Error("not a valid choice"),
		),
		ozzo.Field(&f.Address, ozzo.Required.Error("this field is required")),
		ozzo.Field(&f.Phone, ozzo.Required.Error("this field is required"), validation.PhoneRule),
		ozzo.Field(&f.ImageLink, linkRules...),
		ozzo.Field(&f.Genres,
			ozzo.Required.Error("this field is required"),
			ozzo.Each(ozzo.In(models.AsInterfaces(models.Genres)...).Error("not a valid choice")),
		),
		ozzo.Field(&f.FacebookLink, is.URL.Error("must be a valid URL"), validation.FacebookLinkRule),
		ozzo.Field(&f.WebsiteLink, linkRules...),
	))
}

func (f *VenueForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
}

// Apply copies every mutable field of the form onto v.
func (f VenueForm) Apply(v *models.Venue) {
	f.normalize()
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.Genres = append([]string(nil), f.Genres...)
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.SeekingTalent = bool(f.SeekingTalent)
	v.SeekingDescription = f.SeekingDescription
}

func VenueFormFrom(v *models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingVenue       Checkbox `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) Validate() FieldErrors {
	f.normalize()
	return toFieldErrors(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Name, ozzo.Required.Error("this field is required")),
		ozzo.Field(&f.City, ozzo.Required.Error("this field is required")),
		ozzo.Field(&f.State,
			ozzo.Required.Error("this field is required"),
			ozzo.In(models.AsInterfaces(models.States)...).Error("not a valid choice"),
		),
		ozzo.Field(&f.Phone, ozzo.Required.Error("this field is required"), validation.PhoneRule),
		ozzo.Field(&f.ImageLink, linkRules...),
		ozzo.Field(&f.Genres,
			ozzo.Required.Error("this field is required"),
			ozzo.Each(ozzo.In(models.AsInterfaces(models.Genres)...).Error("not a valid choice")),
		),
		ozzo.Field(&f.FacebookLink, is.URL.Error("must be a valid URL"), validation.FacebookLinkRule),
		ozzo.Field(&f.WebsiteLink, linkRules...),
	))
}

func (f *ArtistForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
}

func (f ArtistForm) Apply(a *models.Artist) {
	f.normalize()
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.Genres = append([]string(nil), f.Genres...)
	a.FacebookLink = f.FacebookLink
	a.WebsiteLink = f.WebsiteLink
	a.SeekingVenue = bool(f.SeekingVenue)
	a.SeekingDescription = f.SeekingDescription
}

func ArtistFormFrom(a *models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// Layouts accepted for a show's start time: the classic form layout, the
// HTML datetime-local input, and RFC 3339.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id"`
	VenueID   string `form:"venue_id" json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

func (f ShowForm) Validate() FieldErrors {
	f.ArtistID = strings.TrimSpace(f.ArtistID)
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.StartTime = strings.TrimSpace(f.StartTime)
	return toFieldErrors(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.ArtistID, ozzo.Required.Error("this field is required"), ozzo.By(positiveID)),
		ozzo.Field(&f.VenueID, ozzo.Required.Error("this field is required"), ozzo.By(positiveID)),
		ozzo.Field(&f.StartTime, ozzo.Required.Error("this field is required"), ozzo.By(startTime)),
	))
}

// ToModel converts a form that passed Validate.
func (f ShowForm) ToModel() (*models.Show, error) {
	artistID, err := parseID(f.ArtistID)
	if err != nil {
		return nil, err
	}
	venueID, err := parseID(f.VenueID)
	if err != nil {
		return nil, err
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

func positiveID(value interface{}) error {
	s, _ := value.(string)
	if _, err := parseID(s); err != nil {
		return errors.New("must be a positive integer id")
	}
	return nil
}

func startTime(value interface{}) error {
	s, _ := value.(string)
	if _, err := parseStartTime(s); err != nil {
		return errors.New("not a valid datetime value")
	}
	return nil
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(n), nil
}

func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
