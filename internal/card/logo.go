package card

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	// Registers the WebP decoder with image.Decode, which imaging uses.
	_ "golang.org/x/image/webp"
)

// Logo ingestion errors. They are meant to be shown to the user.
var (
	ErrLogoTooLarge = errors.New("logo file is too large")
	ErrNotAnImage   = errors.New("logo file is not a supported image")
	ErrLogoDecode   = errors.New("logo image could not be decoded")
)

const (
	// DefaultLogoMaxBytes bounds an uploaded logo before decoding.
	DefaultLogoMaxBytes int64 = 2 << 20

	// logoMaxSide is the largest logo edge kept in the data URI. The card
	// itself is 525px wide so anything bigger only bloats the page.
	logoMaxSide = 600
)

// passthrough lists the formats every browser renders, kept byte-for-byte
// when no resize is needed.
var passthrough = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// DecodeLogo reads an uploaded image and returns it as a base64 data URI.
// A maxBytes of zero or less uses DefaultLogoMaxBytes.
func DecodeLogo(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultLogoMaxBytes
	}

	raw, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}
	if int64(len(raw)) > maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrLogoTooLarge, maxBytes)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrLogoDecode)
	}

	mediaType, _, _ := strings.Cut(mimetype.Detect(raw).String(), ";")
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mediaType)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}

	b := img.Bounds()
	if b.Dx() <= logoMaxSide && b.Dy() <= logoMaxSide && passthrough[mediaType] {
		return dataURI(mediaType, raw), nil
	}

	var buf bytes.Buffer
	fitted := imaging.Fit(img, logoMaxSide, logoMaxSide, imaging.Lanczos)
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}
	return dataURI("image/png", buf.Bytes()), nil
}

func dataURI(mediaType string, payload []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
