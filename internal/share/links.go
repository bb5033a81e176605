// Package share builds the outbound links offered on the publish step.
// Nothing here touches the network.
package share

import (
	"net/url"
	"strings"
)

const (
	mapsSearchBase = "https://www.google.com/maps/search/"
	whatsAppBase   = "https://wa.me/?text="
)

// EncodeURIComponent escapes s like the browser function of the same
// name: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded
// and spaces become %20.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentFixups.Replace(escaped)
}

// QueryEscape leaves a different set unescaped and uses '+' for spaces.
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// MapsURL links to a map search for the place so the user can leave a
// public review there.
func MapsURL(placeName string) string {
	return mapsSearchBase + EncodeURIComponent(placeName)
}

// WhatsAppURL opens a message composer prefilled with text.
func WhatsAppURL(text string) string {
	return whatsAppBase + EncodeURIComponent(text)
}

// Link is a labelled outbound URL.
type Link struct {
	Label string
	URL   string
}

// PublishLinks returns the two share actions for a review.
func PublishLinks(placeName, mediumText string) []Link {
	return []Link{
		{Label: "قيم في Google Maps", URL: MapsURL(placeName)},
		{Label: "شارك عبر WhatsApp", URL: WhatsAppURL(mediumText)},
	}
}

// SocialLinks are the studio's profiles shown in the footer.
var SocialLinks = []Link{
	{Label: "X", URL: "https://x.com/designer_samco?s=21&t=dbffdoGcvgOluktAOa9LHA"},
	{Label: "Instagram", URL: "https://www.instagram.com/samco_design?igsh=MXhiN2RjbG1ydHducg%3D%3D&utm_source=qr"},
	{Label: "TikTok", URL: "https://www.tiktok.com/@samco_designer?_t=ZS-90FZRdOXUiG&_r=1"},
	{Label: "YouTube", URL: "https://www.youtube.com/@samco-desing"},
}
