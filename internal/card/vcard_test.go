package card

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVCard_Default(t *testing.T) {
	v := VCard(Default())

	assert.True(t, strings.HasPrefix(v, "BEGIN:VCARD\r\nVERSION:3.0\r\n"))
	assert.True(t, strings.HasSuffix(v, "END:VCARD\r\n"))
	assert.Contains(t, v, "N:Morgan;Alex;;;\r\n")
	assert.Contains(t, v, "FN:Alex Morgan\r\n")
	assert.Contains(t, v, "ORG:SiteEase\r\n")
	assert.Contains(t, v, "TITLE:Senior Developer\r\n")
	assert.Contains(t, v, "TEL;TYPE=WORK,VOICE:+1 (555) 123-4567\r\n")
	assert.Contains(t, v, "EMAIL;TYPE=INTERNET:alex@siteease.ca\r\n")
	assert.Contains(t, v, "URL:www.siteease.ca\r\n")
	assert.Contains(t, v, "ADR;TYPE=WORK:;;Toronto\\, ON;;;;\r\n")
	assert.Contains(t, v, "NOTE:Crafting digital experiences that matter.\r\n")
}

func TestVCard_OmitsEmptyFields(t *testing.T) {
	v := VCard(Data{FullName: "Prince"})

	assert.Contains(t, v, "N:;Prince;;;\r\n")
	for _, prop := range []string{"ORG", "TITLE", "TEL", "EMAIL", "URL", "ADR", "NOTE"} {
		assert.NotContains(t, v, "\r\n"+prop, prop)
	}
}

func TestVCard_Escapes(t *testing.T) {
	v := VCard(Data{FullName: "A B", CompanyName: "Smith; Sons, Inc\\", Tagline: "one\ntwo"})

	assert.Contains(t, v, `ORG:Smith\; Sons\, Inc\\`+"\r\n")
	assert.Contains(t, v, `NOTE:one\ntwo`+"\r\n")
}

func TestQRCode(t *testing.T) {
	for _, size := range []int{10, 256, 5000} {
		raw, err := QRCode(Default(), size)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		b := img.Bounds()
		assert.Equal(t, b.Dx(), b.Dy())
		assert.GreaterOrEqual(t, b.Dx(), QRMinSize)
		assert.LessOrEqual(t, b.Dx(), QRMaxSize)
	}
}
