package qrcode

import (
	"fmt"
	"strings"
)

// URLPayload returns the encoded text for a URL code
func URLPayload(url string) string {
	return url
}

// WifiPayload returns the WiFi network-join text for a WPA network.
// Values are embedded as given.
func WifiPayload(ssid, password string) string {
	return fmt.Sprintf("WIFI:S:%s;T:WPA;P:%s;H:false;;", ssid, password)
}

// Contact is the data encoded into a contact card code
type Contact struct {
	FirstName    string
	LastName     string
	Title        string
	Organization string
	Phone        string
	Email        string
	URL          string
	Note         string
}

// FullName returns "<first> <last>"
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// VCard renders the contact as a VCard 4.0 document
func (c Contact) VCard() string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		fmt.Sprintf("N:%s;%s;;;", c.LastName, c.FirstName),
		"FN:" + c.FullName(),
		"TITLE:" + c.Title,
		"ORG:" + c.Organization,
		"TEL;TYPE=work:" + c.Phone,
		"EMAIL;TYPE=work:" + c.Email,
		"URL:" + c.URL,
		"NOTE:" + c.Note,
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}
