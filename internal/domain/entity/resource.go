package entity

import (
	"path"
	"time"
)

// Resource records where an uploaded file lives. The bytes themselves are
// stored elsewhere.
type Resource struct {
	ID               int64     `json:"id"`
	Directory        string    `json:"directory"`
	Filename         string    `json:"filename"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}

// Path joins the directory and filename.
func (r *Resource) Path() string {
	return path.Join(r.Directory, r.Filename)
}
