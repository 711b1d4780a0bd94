package v1

import (
	"github.com/go-playground/validator"
)

// Post is a single board entry. Posts carry no identity; two posts with the
// same title and body are indistinguishable, and list position is the only
// thing that tells duplicates apart.
type Post struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body" validate:"required"`
}

func (p Post) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// FilterValue is the haystack posts are matched against when searching.
func (p Post) FilterValue() string {
	return p.Title + " " + p.Body
}
