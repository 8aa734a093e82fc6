package designer

import "mime/multipart"

// FieldRequest replaces one text field.
type FieldRequest struct {
	Field string `form:"field" validate:"required"`
	Value string `form:"value"`
}

// LogoRequest carries an uploaded logo image.
type LogoRequest struct {
	Logo *multipart.FileHeader `form:"logo" validate:"required"`
}

// SideRequest selects the previewed face.
type SideRequest struct {
	Side string `form:"side" validate:"required,oneof=front back"`
}

// ThemeRequest selects the card theme.
type ThemeRequest struct {
	Theme string `form:"theme" validate:"required"`
}

// QRRequest sizes the QR code image.
type QRRequest struct {
	Size int `query:"size" validate:"omitempty,min=100,max=1000"`
}
