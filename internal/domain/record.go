package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagRecord is one entry of the local tag history, written after a tag has
// been created.
type TagRecord struct {
	ID        string    `json:"id"`
	Tag       string    `json:"tag"`
	Commit    string    `json:"commit"`
	Branch    string    `json:"branch"`
	Pushed    bool      `json:"pushed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTagRecord builds a record for a freshly created tag.
func NewTagRecord(tag Tag, commit, branch string, pushed bool) *TagRecord {
	return &TagRecord{
		ID:        uuid.New().String(),
		Tag:       tag.String(),
		Commit:    commit,
		Branch:    branch,
		Pushed:    pushed,
		CreatedAt: time.Now().UTC(),
	}
}
