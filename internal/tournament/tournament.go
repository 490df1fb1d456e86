package tournament

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusLive      Status = "LIVE"
	StatusUpcoming  Status = "UPCOMING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusLive, StatusUpcoming, StatusCompleted:
		return true
	}
	return false
}

type Tournament struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	GameName  string    `db:"game_name" json:"game_name"`
	StreamURL string    `db:"stream_url" json:"stream_url"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	Status    Status    `db:"status" json:"status"`
	StartTime time.Time `db:"start_time" json:"start_time"`

	// Insertion time, only used to order the live group.
	CreatedAt time.Time `db:"created_at" json:"-"`
}

func (t *Tournament) IsLive() bool {
	return t.Status == StatusLive
}
