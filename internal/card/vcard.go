package card

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QR code size bounds, in pixels.
const (
	QRMinSize     = 100
	QRMaxSize     = 1000
	QRDefaultSize = 256
)

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`;`, `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// VCard renders d as a vCard 3.0 contact. Empty fields are left out.
func VCard(d Data) string {
	var b strings.Builder
	line := func(prop, value string) {
		if value == "" {
			return
		}
		b.WriteString(prop)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")

	name := strings.TrimSpace(d.FullName)
	given, family := name, ""
	if i := strings.LastIndex(name, " "); i > 0 {
		given, family = strings.TrimSpace(name[:i]), name[i+1:]
	}
	b.WriteString("N:" + escapeVCard(family) + ";" + escapeVCard(given) + ";;;\r\n")
	b.WriteString("FN:" + escapeVCard(name) + "\r\n")

	line("ORG", escapeVCard(d.CompanyName))
	line("TITLE", escapeVCard(d.JobTitle))
	line("TEL;TYPE=WORK,VOICE", escapeVCard(d.Phone))
	line("EMAIL;TYPE=INTERNET", escapeVCard(d.Email))
	line("URL", escapeVCard(d.Website))
	if d.Address != "" {
		line("ADR;TYPE=WORK", ";;"+escapeVCard(d.Address)+";;;;")
	}
	line("NOTE", escapeVCard(d.Tagline))

	b.WriteString("END:VCARD\r\n")
	return b.String()
}

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}

// QRCode returns a PNG QR code encoding the card's vCard. The size is
// clamped to [QRMinSize, QRMaxSize].
func QRCode(d Data, size int) ([]byte, error) {
	if size < QRMinSize {
		size = QRMinSize
	}
	if size > QRMaxSize {
		size = QRMaxSize
	}
	return qrcode.Encode(VCard(d), qrcode.Medium, size)
}
