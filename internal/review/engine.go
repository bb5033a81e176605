package review

import (
	"strings"
	"text/template"
	"unicode"
)

// StarGlyph is repeated once per rating point.
const StarGlyph = "⭐"

// GlowingThreshold is the rating from which the warmer sentiment phrases
// are used.
const GlowingThreshold = 4

const (
	shortTemplate = "تجربتي في {{.PlaceName}} كانت {{if .Glowing}}مميزة جداً{{else}}جيدة{{end}}. " +
		"{{with .Pros}}أعجبني: {{.}}{{end}}. " +
		"التقييم: {{.Rating}}/5 {{.Stars}} \n" +
		"#{{.Tag}} #سامكو_ريفيو"

	mediumTemplate = "📍 زيارة لـ: {{.PlaceName}}\n" +
		"☕ النوع: {{.ServiceType}}\n\n" +
		"📝 الخلاصة:\n" +
		"المكان جميل ويستحق التجربة. " +
		"{{with .Pros}}أكثر ما لفت انتباهي هو {{.}}.{{end}} " +
		"{{with .Cons}}لكن هناك ملاحظة بسيطة بخصوص {{.}}.{{end}}\n\n" +
		"التقييم العام: {{.Rating}}/5 {{.Stars}}\n" +
		"أنصحكم بتجربته! 👍\n\n" +
		"#تجارب #مطاعم #{{.Tag}} #تصويري"

	cinematicTemplate = "✨ حكاية مكان: {{.PlaceName}} ✨\n\n" +
		"في زوايا هذا الـ{{.ServiceType}}، تختبئ تفاصيل تصنع الفارق. " +
		"من اللحظة الأولى، تشعر بـ{{if .Glowing}}الفخامة والاهتمام{{else}}الراحة والهدوء{{end}}. \n\n" +
		"💎 نقاط الجمال: {{or .Pros .DefaultPros}}\n" +
		"⚠️ همسة محبة: {{or .Cons .DefaultCons}}\n\n" +
		"🌟 الحكم النهائي:\n" +
		"تجربة تلامس الحواس وتستحق التكرار.\n" +
		"{{.Stars}}\n\n" +
		"📷 By Samco Studio\n" +
		"#سينما_المكان #ذائقة #{{.Tag}}"
)

// Fallback phrases used by the cinematic variant when the optional fields
// are empty.
const (
	DefaultBeautyPoints = "الأجواء العامة"
	DefaultGentleNote   = "لا يوجد ملاحظات جوهرية"
)

var (
	shortTmpl     = template.Must(template.New("short").Parse(shortTemplate))
	mediumTmpl    = template.Must(template.New("medium").Parse(mediumTemplate))
	cinematicTmpl = template.Must(template.New("cinematic").Parse(cinematicTemplate))
)

// templateData is the view of an Input the variant templates read.
type templateData struct {
	PlaceName   string
	ServiceType ServiceType
	Rating      int
	Pros        string
	Cons        string
	Stars       string
	Tag         string
	Glowing     bool
	DefaultPros string
	DefaultCons string
}

// Stars renders the star glyph rating times. Non-positive ratings yield "".
func Stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	return strings.Repeat(StarGlyph, rating)
}

// Hashtag turns a place name into a hashtag body by replacing every
// whitespace rune with an underscore.
func Hashtag(placeName string) string {
	return strings.Map(func(r rune) rune {
		if isTagSpace(r) {
			return '_'
		}
		return r
	}, placeName)
}

// isTagSpace is the whitespace set of a web regexp \s: unicode spaces plus
// the BOM, minus NEL.
func isTagSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// Generate renders the three variants for in. It performs no validation:
// callers gate on a non-empty place name. The result depends only on in.
func Generate(in Input) Generated {
	data := templateData{
		PlaceName:   in.PlaceName,
		ServiceType: in.ServiceType,
		Rating:      in.Rating,
		Pros:        in.Pros,
		Cons:        in.Cons,
		Stars:       Stars(in.Rating),
		Tag:         Hashtag(in.PlaceName),
		Glowing:     in.Rating >= GlowingThreshold,
		DefaultPros: DefaultBeautyPoints,
		DefaultCons: DefaultGentleNote,
	}
	return Generated{
		Short:     execute(shortTmpl, data),
		Medium:    execute(mediumTmpl, data),
		Cinematic: execute(cinematicTmpl, data),
	}
}

// execute renders a static template. The templates only reference fields
// of templateData, so execution cannot fail at runtime.
func execute(t *template.Template, data templateData) string {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		panic("review: template " + t.Name() + ": " + err.Error())
	}
	return sb.String()
}
