package lead

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collection is the document store collection leads are appended to.
const Collection = "lead"

// Lead is a contact/interest capture record. Created exactly once per inbound
// form submission; never mutated or deleted by this service.
type Lead struct {
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Interest  string    `bson:"interest,omitempty" json:"interest,omitempty"`
	Asset     string    `bson:"asset,omitempty" json:"asset,omitempty"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CreateLeadRequest DTO for capturing a lead from a download or contact form
type CreateLeadRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Interest string `json:"interest"`
	Asset    string `json:"asset"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

// Validate validates CreateLeadRequest. Only the email carries a constraint;
// every other field is free text. Runs before any store operation.
func (req CreateLeadRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
	)
}

// ToLead builds the persisted record from a validated request.
func (req CreateLeadRequest) ToLead(now time.Time) Lead {
	return Lead{
		Email:     req.Email,
		Name:      req.Name,
		Interest:  req.Interest,
		Asset:     req.Asset,
		Message:   req.Message,
		Source:    req.Source,
		CreatedAt: now,
	}
}
