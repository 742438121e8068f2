package view

import "github.com/Eursukkul/booking-microservice/directory-service/internal/dto"

// Page is the data handed to every template.
type Page struct {
	Title   string
	Flashes []string
	CSRF    string
	// Data is the page specific payload: a detail, list or search result.
	Data any
	// Form holds the values shown in a form; Errors the fields that failed.
	Form   any
	Errors dto.FieldErrors
	// Action is the form's submit URL.
	Action string
}

func (p *Page) FieldError(field string) string {
	for _, e := range p.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
