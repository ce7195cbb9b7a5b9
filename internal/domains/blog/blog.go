package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collection is the document store collection blog posts live in.
const Collection = "blogpost"

// BlogPost is a published article. Posts are authored out-of-band; this
// service only reads them, so the schema exists to document and validate the
// expected shape, not to gate writes.
type BlogPost struct {
	Title      string   `bson:"title" json:"title"`
	Slug       string   `bson:"slug" json:"slug"`
	Excerpt    string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content    string   `bson:"content" json:"content"`
	CoverImage string   `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Tags       []string `bson:"tags" json:"tags"`
}

// Validate validates a BlogPost against the schema rules.
func (p BlogPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.CoverImage, is.URL),
	)
}
