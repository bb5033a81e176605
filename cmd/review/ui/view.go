package ui

import (
	"fmt"
	"strings"

	"quickreview/internal/poster"
	"quickreview/internal/review"
	"quickreview/internal/share"
	"quickreview/internal/wizard"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "Quick Review"
	appSubtitle = "By Samco Studio"

	publishHeadline = "أحسنت يا بطل! 🌟"
	publishSubtitle = "تقييمك جاهز للانطلاق. شارك تجربتك مع العالم."
	footerFollow    = "تابع سامكو للمزيد من الأدوات الإبداعية"
	footerCredit    = "Designed & Developed by Samco AI © 2025"
)

var variantTitles = map[review.Variant]string{
	review.VariantShort:     "صيغة قصيرة (ستوري)",
	review.VariantMedium:    "صيغة متوازنة (بوست)",
	review.VariantCinematic: "صيغة سينمائية (ريلز)",
}

// View renders the wizard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n")

	if band := m.confetti.View(); band != "" {
		b.WriteString(band)
		b.WriteString("\n")
	}

	var body string
	switch {
	case m.showThemeMenu:
		body = m.themeMenu.View()
	case m.session.Step() == wizard.StepEntry:
		body = m.renderEntry()
	case m.session.Step() == wizard.StepResults:
		body = m.results.View()
	case m.session.Step() == wizard.StepStudio:
		body = m.renderStudio()
	case m.session.Step() == wizard.StepPublish:
		body = m.renderPublish()
	}
	b.WriteString(m.styles.Content.Render(body))
	b.WriteString("\n")

	if st := m.toast.State(); st.Visible {
		b.WriteString(m.styles.Toast.Render(st.Message))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys.forStep(m.session.Step())))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.styles.App.Render(b.String())
}

func (m Model) renderHeader() string {
	th := m.styles.Theme
	parts := []string{
		m.styles.Header.Render(appTitle),
		m.styles.Muted.Render(appSubtitle),
		m.styles.Accent.Render(th.Icon + " " + th.Name),
	}
	if m.audioOn {
		parts = append(parts, m.styles.Accent.Render("♪ on"))
	} else {
		parts = append(parts, m.styles.Muted.Render("♪ off"))
	}
	if m.session.Step() > wizard.StepEntry {
		parts = append(parts, m.styles.Muted.Render("⌂ الرئيسية"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderProgress() string {
	current := m.session.Step()
	parts := make([]string, 0, len(wizard.Steps))
	for _, s := range wizard.Steps {
		label := fmt.Sprintf("%d %s", s, s.Title())
		switch {
		case s < current && !m.session.Generated().IsEmpty():
			parts = append(parts, m.styles.StepDone.Render("✓ "+label))
		case s == current:
			parts = append(parts, m.styles.StepCurrent.Render(label))
		default:
			parts = append(parts, m.styles.StepTodo.Render(label))
		}
	}
	return strings.Join(parts, m.styles.Divider.Render(" ─ "))
}

func (m Model) label(text string, f entryField) string {
	if m.focus == f {
		return m.styles.FocusedLabel.Render("› " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m Model) renderEntry() string {
	in := m.session.Review()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(wizard.StepEntry.Title()))
	b.WriteString("\n")

	b.WriteString(m.label("اسم المكان", fieldPlace))
	b.WriteString("\n")
	b.WriteString(m.place.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("نوع الخدمة", fieldService))
	b.WriteString("\n")
	opts := make([]string, 0, len(review.ServiceOptions))
	for _, opt := range review.ServiceOptions {
		text := opt.Icon + " " + opt.Label
		if opt.Type == in.ServiceType {
			opts = append(opts, m.styles.Selected.Render(text))
		} else {
			opts = append(opts, m.styles.Muted.Render(text))
		}
	}
	b.WriteString(strings.Join(opts, " "))
	b.WriteString("\n\n")

	b.WriteString(m.label("التقييم", fieldRating))
	b.WriteString("\n")
	b.WriteString(m.renderStars(in.Rating))
	b.WriteString("\n\n")

	b.WriteString(m.label("أبرز المميزات (اختياري)", fieldPros))
	b.WriteString("\n")
	b.WriteString(m.pros.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("ملاحظات / عيوب (اختياري)", fieldCons))
	b.WriteString("\n")
	b.WriteString(m.cons.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Button.Render("توليد التقييم الاحترافي ✨"))
	return b.String()
}

func (m Model) renderStars(rating int) string {
	var b strings.Builder
	for i := 0; i < review.MaxRating; i++ {
		if i < rating {
			b.WriteString(m.styles.StarOn.Render("★"))
		} else {
			b.WriteString(m.styles.StarOff.Render("☆"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (m Model) renderVariants() string {
	g := m.session.Generated()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(wizard.StepResults.Title()))
	b.WriteString("\n")
	for i, v := range review.Variants {
		style := m.styles.Card
		if i == m.variant {
			style = m.styles.ActiveCard
		}
		width := m.width - 8
		if width < 20 {
			width = 20
		}
		card := m.styles.Accent.Render(variantTitles[v]) + "\n" + g.Text(v)
		b.WriteString(style.Width(width).Render(card))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStudio() string {
	cfg := m.session.PosterConfig()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(wizard.StepStudio.Title()))
	b.WriteString("\n")

	formats := make([]string, 0, 2)
	for _, f := range []poster.Format{poster.FormatStory, poster.FormatPost} {
		if f == cfg.Format {
			formats = append(formats, m.styles.Selected.Render(f.Label()))
		} else {
			formats = append(formats, m.styles.Muted.Render(f.Label()))
		}
	}
	b.WriteString(m.styles.Label.Render("مقاس التصميم") + "  " + strings.Join(formats, " "))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("رفع صورة الخلفية"))
	b.WriteString("\n")
	if m.editingImage {
		b.WriteString(m.imagePath.View())
		b.WriteString("\n")
	}
	if m.imageErr != "" {
		b.WriteString(m.styles.Error.Render(m.imageErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderPoster())
	b.WriteString("\n\n")

	switch {
	case m.exporting:
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("تحميل البوستر"))
	case m.lastExport != "":
		b.WriteString(m.styles.Muted.Render("⬇ " + m.lastExport))
	default:
		b.WriteString(m.styles.Button.Render("⬇ تحميل البوستر"))
	}
	return b.String()
}

// renderPoster draws a terminal preview of the poster descriptor.
func (m Model) renderPoster() string {
	d := m.session.Poster()
	width := 30
	if d.Format == poster.FormatPost {
		width = 36
	}

	var lines []string
	lines = append(lines, lipgloss.PlaceHorizontal(width-4, lipgloss.Right, m.styles.Badge.Render(d.Badge)))
	if d.HasBackground() {
		lines = append(lines, m.styles.Muted.Render("🖼  "+shortRef(string(d.Background))))
	} else {
		lines = append(lines, m.styles.Muted.Render(d.Placeholder))
	}
	lines = append(lines, "")

	var stars strings.Builder
	for _, filled := range d.Stars {
		if filled {
			stars.WriteString(m.styles.StarOn.Render("★"))
		} else {
			stars.WriteString(m.styles.StarOff.Render("☆"))
		}
	}
	lines = append(lines,
		stars.String(),
		m.styles.Body.Bold(true).Render(d.PlaceName),
		m.styles.PosterTag.Render(d.Label),
		m.styles.Subtitle.Render(`"`+d.Quote+`"`),
		m.styles.Muted.Render(d.AspectRatio),
	)
	return m.styles.Poster.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPublish() string {
	var b strings.Builder

	md := "# " + publishHeadline + "\n\n" + publishSubtitle + "\n"
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			md = out
		}
	}
	b.WriteString(md)
	b.WriteString("\n")

	for i, link := range m.session.ShareLinks() {
		keyHint := m.keys.CopyMaps.Help().Key
		if i == 1 {
			keyHint = m.keys.CopyShare.Help().Key
		}
		b.WriteString(m.styles.Button.Render(link.Label))
		b.WriteString(" " + m.styles.Muted.Render("["+keyHint+"]"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(link.URL))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Accent.Render("↺ إنشاء تقييم جديد"))
	return b.String()
}

func (m Model) renderFooter() string {
	names := make([]string, 0, len(share.SocialLinks))
	for _, l := range share.SocialLinks {
		names = append(names, l.Label)
	}
	return m.styles.Footer.Render(
		footerFollow + "  " + strings.Join(names, " · ") + "\n" + footerCredit,
	)
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
