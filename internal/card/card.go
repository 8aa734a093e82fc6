// Package card holds the business card content model edited by the designer.
package card

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for card mutations.
var (
	ErrUnknownField = errors.New("unknown card field")
	ErrLogoField    = errors.New("logo must be set through the logo operations")
	ErrInvalidLogo  = errors.New("logo must be an image data URI")
)

// Field is the form key of one editable card field.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldJobTitle    Field = "jobTitle"
	FieldCompanyName Field = "companyName"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldWebsite     Field = "website"
	FieldTagline     Field = "tagline"
	FieldAddress     Field = "address"
	FieldLogoURL     Field = "logoUrl"
)

// textFields is the form order of the free-text fields.
var textFields = []Field{
	FieldCompanyName,
	FieldTagline,
	FieldFullName,
	FieldJobTitle,
	FieldEmail,
	FieldPhone,
	FieldWebsite,
	FieldAddress,
}

// Fields returns the editable text fields in form order.
func Fields() []Field {
	out := make([]Field, len(textFields))
	copy(out, textFields)
	return out
}

// ParseField resolves a form key to a Field. The logo key is accepted so
// callers can report ErrLogoField instead of ErrUnknownField.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if f == FieldLogoURL {
		return f, nil
	}
	for _, tf := range textFields {
		if tf == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Data is the flat record describing one business card. Every text field
// accepts arbitrary text, including the empty string.
type Data struct {
	FullName    string `json:"fullName"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Tagline     string `json:"tagline"`
	Address     string `json:"address"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

// Default returns the sample card shown on first render, so the preview is
// never blank.
func Default() Data {
	return Data{
		FullName:    "Alex Morgan",
		JobTitle:    "Senior Developer",
		CompanyName: "SiteEase",
		Email:       "alex@siteease.ca",
		Phone:       "+1 (555) 123-4567",
		Website:     "www.siteease.ca",
		Tagline:     "Crafting digital experiences that matter.",
		Address:     "Toronto, ON",
	}
}

func (d *Data) ref(f Field) (*string, error) {
	switch f {
	case FieldFullName:
		return &d.FullName, nil
	case FieldJobTitle:
		return &d.JobTitle, nil
	case FieldCompanyName:
		return &d.CompanyName, nil
	case FieldEmail:
		return &d.Email, nil
	case FieldPhone:
		return &d.Phone, nil
	case FieldWebsite:
		return &d.Website, nil
	case FieldTagline:
		return &d.Tagline, nil
	case FieldAddress:
		return &d.Address, nil
	case FieldLogoURL:
		return &d.LogoURL, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}

// Set replaces one text field with value exactly as given.
func (d *Data) Set(f Field, value string) error {
	if f == FieldLogoURL {
		return ErrLogoField
	}
	p, err := d.ref(f)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Get reads one field back verbatim.
func (d Data) Get(f Field) (string, error) {
	p, err := d.ref(f)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// ReadyForTagline reports whether a tagline may be generated for this card.
func (d Data) ReadyForTagline() bool {
	return d.JobTitle != "" && d.CompanyName != ""
}

// HasLogo reports whether an uploaded logo replaces the built-in wordmark.
func (d Data) HasLogo() bool {
	return d.LogoURL != ""
}

// SetLogo stores an uploaded logo. Only image data URIs are accepted.
func (d *Data) SetLogo(uri string) error {
	if err := ValidateLogoURI(uri); err != nil {
		return err
	}
	d.LogoURL = uri
	return nil
}

// ClearLogo reverts the card to the built-in wordmark.
func (d *Data) ClearLogo() {
	d.LogoURL = ""
}

var validate = validator.New()

type logoURI struct {
	URI string `validate:"required,datauri,startswith=data:image/"`
}

// ValidateLogoURI checks that uri is a well-formed base64 image data URI.
func ValidateLogoURI(uri string) error {
	if err := validate.Struct(logoURI{URI: uri}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}
	return nil
}
