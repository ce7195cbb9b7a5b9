package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collection is the document store collection products live in.
const Collection = "product"

// Product is a catalog item: n8n workflows, templates, automations.
// Products are maintained out-of-band; this service reads and filters them.
type Product struct {
	Title       string  `bson:"title" json:"title"`
	Slug        string  `bson:"slug" json:"slug"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Category    string  `bson:"category" json:"category"`
	Price       float64 `bson:"price" json:"price"`
	DownloadURL string  `bson:"download_url,omitempty" json:"download_url,omitempty"`
	Thumbnail   string  `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}

// Validate validates a Product against the schema rules. Price 0 means free;
// negative prices never pass.
func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.DownloadURL, is.URL),
		validation.Field(&p.Thumbnail, is.URL),
	)
}
