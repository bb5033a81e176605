package poster

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"quickreview/internal/imageref"
)

// ElementID is the id of the poster root in the rendered page; the
// rasterizer captures exactly this element.
const ElementID = "poster"

const pageTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; background: transparent; }
  #poster { position: relative; overflow: hidden; background: #000; font-family: sans-serif; color: #fff; }
  #poster .bg { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
  #poster .placeholder { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center;
    background: linear-gradient(to bottom right, #1e293b, #000); color: #4b5563; text-align: center; padding: 16px; }
  #poster .overlay { position: absolute; inset: 0; background: linear-gradient(to top, #000, rgba(0,0,0,.4), transparent); }
  #poster .content { position: absolute; bottom: 0; left: 0; right: 0; padding: 24px; text-align: center; }
  #poster .stars { display: flex; justify-content: center; gap: 4px; margin-bottom: 8px; font-size: 18px; }
  #poster .star { color: #6b7280; }
  #poster .star.filled { color: #fbbf24; }
  #poster h2 { font-size: 24px; font-weight: 700; margin: 0 0 4px; }
  #poster .label { font-size: 14px; letter-spacing: .2em; text-transform: uppercase; margin: 0 0 16px; }
  #poster .quote { border-top: 1px solid rgba(255,255,255,.2); padding-top: 16px; margin-top: 8px; }
  #poster .quote p { font-size: 12px; color: #d1d5db; font-style: italic; margin: 0; }
  #poster .badge { position: absolute; top: 16px; right: 16px; background: rgba(255,255,255,.1); padding: 4px 8px;
    border-radius: 4px; font-size: 10px; font-weight: 700; letter-spacing: .1em; border: 1px solid rgba(255,255,255,.2); }
</style>
</head>
<body>
<div id="{{.ElementID}}" data-aspect="{{.AspectRatio}}" style="width: {{.Width}}px; height: {{.Height}}px">
{{- if .BackgroundURL}}
  <img class="bg" src="{{.BackgroundURL}}" alt="Poster bg">
{{- else}}
  <div class="placeholder"><span>{{.Placeholder}}</span></div>
{{- end}}
  <div class="overlay"></div>
  <div class="content">
    <div class="stars">{{range .Stars}}<span class="star{{if .}} filled{{end}}">★</span>{{end}}</div>
    <h2>{{.PlaceName}}</h2>
    <p class="label" style="color: {{.Accent}}">{{.Label}}</p>
    <div class="quote"><p>"{{.Quote}}"</p></div>
  </div>
  <div class="badge">{{.Badge}}</div>
</div>
</body>
</html>
`

var page = template.Must(template.New("poster").Parse(pageTemplate))

type pageData struct {
	Descriptor
	ElementID     string
	Width         int
	Height        int
	BackgroundURL template.URL
	Accent        template.CSS
}

// RenderHTML lays the descriptor out as a standalone page. bg is the
// resolved background image, or nil when the descriptor has none; it is
// inlined as a data URI so the page needs no file or network access.
func RenderHTML(d Descriptor, bg *imageref.Image) (string, error) {
	size := d.Format.Size()
	data := pageData{
		Descriptor: d,
		ElementID:  ElementID,
		Width:      size.Width,
		Height:     size.Height,
		Accent:     template.CSS(sanitizeColor(d.Accent)),
	}
	if bg != nil && len(bg.Data) > 0 {
		data.BackgroundURL = template.URL(dataURI(bg))
	}

	var sb strings.Builder
	if err := page.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render poster html: %w", err)
	}
	return sb.String(), nil
}

func dataURI(img *imageref.Image) string {
	mime := img.MIMEType
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/png"
	}
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// sanitizeColor passes through #rrggbb values and falls back to white.
func sanitizeColor(c string) string {
	if len(c) != 7 || c[0] != '#' {
		return "#ffffff"
	}
	for _, r := range c[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "#ffffff"
		}
	}
	return c
}
