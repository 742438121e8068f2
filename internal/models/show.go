package models

import "time"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	StartTime time.Time `gorm:"type:timestamptz;not null;index" json:"start_time"`
	CreatedAt time.Time `json:"created_at"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}
