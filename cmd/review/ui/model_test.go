package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quickreview/internal/imageref"
	"quickreview/internal/loader"
	"quickreview/internal/poster"
	"quickreview/internal/review"
	"quickreview/internal/theme"
	"quickreview/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	created  []string
	released []imageref.Ref
	err      error
}

func (f *fakeImages) Create(path string) (imageref.Ref, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, path)
	return imageref.Ref("ref-" + path), nil
}

func (f *fakeImages) Release(ref imageref.Ref) { f.released = append(f.released, ref) }

type fakeExporter struct {
	got []poster.Descriptor
	err error
}

func (e *fakeExporter) Export(_ context.Context, d poster.Descriptor) (string, error) {
	e.got = append(e.got, d)
	if e.err != nil {
		return "", e.err
	}
	return "/out/" + poster.FileName(d.PlaceName), nil
}

type fakeAudio struct{ playing bool }

func (a *fakeAudio) Toggle(context.Context) (bool, error) {
	a.playing = !a.playing
	return a.playing, nil
}

func readyLoader(t *testing.T, ids ...loader.ID) *loader.Loader {
	t.Helper()
	l := loader.New()
	for _, id := range ids {
		l.Register(id, func(context.Context) error { return nil })
		require.NoError(t, l.EnsureLoaded(context.Background(), id))
	}
	return l
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Clipboard == nil {
		opts.Clipboard = wizard.ClipboardFunc(func(string) error { return nil })
	}
	m := New(opts)
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	ctrlG = tea.KeyMsg{Type: tea.KeyCtrlG}
	ctrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
	home  = tea.KeyMsg{Type: tea.KeyHome}
)

// fillEntry types a place name, picks a rating and pros.
func fillEntry(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "Cafe X")
	m = press(t, m, tab, tab, runes("5"), tab)
	m = typeText(t, m, "great coffee")
	return m
}

func TestNewModelStartsOnEntry(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.Equal(t, wizard.StepEntry, m.Session().Step())
	assert.Equal(t, fieldPlace, m.focus)
	assert.True(t, m.place.Focused())

	view := m.View()
	assert.Contains(t, view, "Quick Review")
	assert.Contains(t, view, "بيانات التقييم")
	assert.Contains(t, view, "اسم المكان")
	assert.Contains(t, view, footerCredit)
	assert.NotContains(t, view, "⌂")
}

func TestTypingUpdatesSession(t *testing.T) {
	m := newTestModel(t, Options{})
	m = fillEntry(t, m)

	in := m.Session().Review()
	assert.Equal(t, "Cafe X", in.PlaceName)
	assert.Equal(t, 5, in.Rating)
	assert.Equal(t, "great coffee", in.Pros)
	assert.Equal(t, fieldPros, m.focus)
}

func TestServicePicker(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tab)
	require.Equal(t, fieldService, m.focus)

	m = press(t, m, right)
	assert.Equal(t, review.ServiceOptions[1].Type, m.Session().Review().ServiceType)
	for range review.ServiceOptions {
		m = press(t, m, right)
	}
	assert.Equal(t, review.ServiceOptions[1].Type, m.Session().Review().ServiceType, "a full cycle wraps back")
}

func TestRatingKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tab, tab)
	require.Equal(t, fieldRating, m.focus)

	m = press(t, m, right, right)
	assert.Equal(t, 2, m.Session().Review().Rating)
	m = press(t, m, runes("4"))
	assert.Equal(t, 4, m.Session().Review().Rating)
	m = press(t, m, runes("9"))
	assert.Equal(t, 4, m.Session().Review().Rating)
}

func TestGenerateWithoutPlaceShowsToast(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, ctrlG)

	assert.Equal(t, wizard.StepEntry, m.Session().Step())
	assert.True(t, m.Session().Generated().IsEmpty())
	assert.Contains(t, m.View(), wizard.MsgPlaceNameRequired)
}

func TestGenerateAdvancesAndCelebrates(t *testing.T) {
	m := newTestModel(t, Options{Loader: readyLoader(t, loader.Confetti)})
	m = fillEntry(t, m)

	next, cmd := m.Update(ctrlG)
	m = next.(Model)

	assert.Equal(t, wizard.StepResults, m.Session().Step())
	assert.True(t, m.confetti.Active())
	assert.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "اختر أسلوبك")
	assert.Contains(t, view, "⌂")
	assert.Contains(t, m.results.View(), "صيغة قصيرة")
}

func TestProgressMarksStepsBehindGeneratedReview(t *testing.T) {
	m := newTestModel(t, Options{})
	m = fillEntry(t, m)
	next, _ := m.Update(ctrlG)
	m = next.(Model)
	m.Session().GoToStep(wizard.StepStudio)

	progress := m.renderProgress()
	assert.Equal(t, 2, strings.Count(progress, "✓"))
}

func TestGenerateWithoutConfettiCapability(t *testing.T) {
	m := newTestModel(t, Options{Loader: loader.New()})
	m = typeText(t, m, "Cafe X")
	m = press(t, m, enter)

	assert.Equal(t, wizard.StepResults, m.Session().Step())
	assert.False(t, m.confetti.Active())
}

func TestConfettiTicksUntilDone(t *testing.T) {
	m := newTestModel(t, Options{Loader: readyLoader(t, loader.Confetti)})
	m = typeText(t, m, "Cafe X")
	m = press(t, m, ctrlG)
	require.True(t, m.confetti.Active())

	for i := 0; i < maxConfettiFrames && m.confetti.Active(); i++ {
		next, _ := m.Update(confettiTickMsg{})
		m = next.(Model)
	}
	assert.False(t, m.confetti.Active())
	assert.Empty(t, m.confetti.View())
}

func TestResultsCopySelectedVariant(t *testing.T) {
	var copied []string
	m := newTestModel(t, Options{Clipboard: wizard.ClipboardFunc(func(s string) error {
		copied = append(copied, s)
		return nil
	})})
	m = fillEntry(t, m)
	m = press(t, m, ctrlG, down, runes("c"))

	require.Len(t, copied, 1)
	assert.Equal(t, m.Session().Generated().Medium, copied[0])
	assert.Contains(t, m.View(), wizard.MsgCopied)

	m = press(t, m, runes("3"), runes("c"))
	assert.Equal(t, m.Session().Generated().Cinematic, copied[1])
}

func TestResultsBackRestoresForm(t *testing.T) {
	m := newTestModel(t, Options{})
	m = fillEntry(t, m)
	m = press(t, m, ctrlG, runes("b"))

	assert.Equal(t, wizard.StepEntry, m.Session().Step())
	assert.Equal(t, "Cafe X", m.place.Value())
	assert.True(t, m.place.Focused())
}

func TestStudioBeforeGenerate(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Session().GoToStep(wizard.StepStudio)

	assert.Equal(t, wizard.StepStudio, m.Session().Step())
	d := m.Session().Poster()
	assert.Equal(t, poster.DefaultQuote, d.Quote)
	assert.Equal(t, 0, d.FilledStars())

	view := m.View()
	assert.Contains(t, view, poster.Placeholder)
	assert.Contains(t, view, "تجربة رائعة")
	assert.Contains(t, view, poster.Label)
	assert.Contains(t, view, "☆☆☆☆☆")
	assert.NotContains(t, view, "✓", "no step is complete without generated reviews")
}

func TestStudioFormatToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Session().GoToStep(wizard.StepStudio)

	m = press(t, m, runes("f"))
	assert.Equal(t, poster.FormatPost, m.Session().PosterConfig().Format)
	assert.Contains(t, m.View(), "4:5")
	m = press(t, m, runes("f"))
	assert.Equal(t, poster.FormatStory, m.Session().PosterConfig().Format)
}

func TestStudioPickImage(t *testing.T) {
	images := &fakeImages{}
	m := newTestModel(t, Options{Images: images})
	m.Session().GoToStep(wizard.StepStudio)

	m = press(t, m, runes("i"))
	require.True(t, m.editingImage)
	m = typeText(t, m, "bg.png")
	m = press(t, m, enter)

	assert.False(t, m.editingImage)
	assert.Equal(t, []string{"bg.png"}, images.created)
	assert.Equal(t, imageref.Ref("ref-bg.png"), m.Session().PosterConfig().Background)

	m = press(t, m, runes("i"))
	m = typeText(t, m, "other.png")
	m = press(t, m, enter)
	assert.Equal(t, []imageref.Ref{"ref-bg.png"}, images.released)
}

func TestStudioPickImageError(t *testing.T) {
	images := &fakeImages{err: errors.New("not an image")}
	m := newTestModel(t, Options{Images: images})
	m.Session().GoToStep(wizard.StepStudio)

	m = press(t, m, runes("i"))
	m = typeText(t, m, "notes.txt")
	m = press(t, m, enter)

	assert.True(t, m.Session().PosterConfig().Background.IsZero())
	assert.Contains(t, m.View(), "not an image")
}

func TestStudioImageCancel(t *testing.T) {
	m := newTestModel(t, Options{Images: &fakeImages{}})
	m.Session().GoToStep(wizard.StepStudio)

	m = press(t, m, runes("i"))
	m = typeText(t, m, "nb")
	m = press(t, m, esc)
	assert.False(t, m.editingImage)
	assert.True(t, m.Session().PosterConfig().Background.IsZero())
	assert.Equal(t, wizard.StepStudio, m.Session().Step())
}

func TestSaveBeforeRasterizerIsReady(t *testing.T) {
	exp := &fakeExporter{}
	m := newTestModel(t, Options{Loader: loader.New(), Exporter: exp})
	m.Session().GoToStep(wizard.StepStudio)

	next, cmd := m.Update(runes("s"))
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.exporting)
	assert.Empty(t, exp.got)
	assert.Contains(t, m.View(), wizard.MsgToolsLoading)
}

func TestSavePoster(t *testing.T) {
	exp := &fakeExporter{}
	m := newTestModel(t, Options{Loader: readyLoader(t, loader.Rasterizer), Exporter: exp})
	m = typeText(t, m, "Cafe X")
	m = press(t, m, ctrlG, runes("n"))
	require.Equal(t, wizard.StepStudio, m.Session().Step())

	next, cmd := m.Update(runes("s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.exporting)

	// Run the export command directly; the batch also holds a spinner tick.
	d := m.Session().Poster()
	path, err := m.Session().ExportDescriptor(context.Background(), d)
	require.NoError(t, err)

	next, _ = m.Update(exportDoneMsg{path: path})
	m = next.(Model)
	assert.False(t, m.exporting)
	assert.Equal(t, "/out/Samco-Review-Cafe X.png", m.lastExport)
	assert.Contains(t, m.View(), wizard.MsgPosterSaved)
}

func TestSavePosterFailure(t *testing.T) {
	exp := &fakeExporter{err: errors.New("tainted canvas")}
	m := newTestModel(t, Options{Loader: readyLoader(t, loader.Rasterizer), Exporter: exp})
	m.Session().GoToStep(wizard.StepStudio)

	_, err := m.Session().ExportPoster(context.Background())
	require.Error(t, err)
	next, _ := m.Update(exportDoneMsg{err: err})
	m = next.(Model)

	assert.Empty(t, m.lastExport)
	assert.Contains(t, m.View(), wizard.MsgPosterFailed)
}

func TestPublishAndRestart(t *testing.T) {
	var copied []string
	m := newTestModel(t, Options{
		Theme:  theme.Coffee,
		Images: &fakeImages{},
		Clipboard: wizard.ClipboardFunc(func(s string) error {
			copied = append(copied, s)
			return nil
		}),
	})
	m = fillEntry(t, m)
	m = press(t, m, ctrlG, runes("n"), runes("n"))
	require.Equal(t, wizard.StepPublish, m.Session().Step())

	view := m.View()
	assert.Contains(t, view, "قيم في Google Maps")
	assert.Contains(t, view, "شارك عبر WhatsApp")
	assert.Contains(t, view, "https://www.google.com/maps/search/Cafe%20X")

	m = press(t, m, runes("m"), runes("w"))
	require.Len(t, copied, 2)
	assert.Equal(t, "https://www.google.com/maps/search/Cafe%20X", copied[0])
	assert.True(t, strings.HasPrefix(copied[1], "https://wa.me/?text="))

	m = press(t, m, runes("r"))
	assert.Equal(t, wizard.StepEntry, m.Session().Step())
	assert.Equal(t, review.NewInput(), m.Session().Review())
	assert.Empty(t, m.place.Value())
	assert.Empty(t, m.pros.Value())
	assert.Equal(t, theme.Coffee, m.Session().ThemeID())
}

func TestHomeKey(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Session().GoToStep(wizard.StepPublish)

	m = press(t, m, home)
	assert.Equal(t, wizard.StepEntry, m.Session().Step())
	assert.True(t, m.place.Focused())
}

func TestThemeMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, ctrlT)
	require.True(t, m.showThemeMenu)
	assert.Contains(t, m.View(), "اختر الثيم")

	m = press(t, m, down, down, down, enter)
	assert.False(t, m.showThemeMenu)
	assert.Equal(t, theme.Cyber, m.Session().ThemeID())
	assert.Equal(t, theme.Cyber, m.styles.Theme.ID)

	m = press(t, m, ctrlT, esc)
	assert.False(t, m.showThemeMenu)
	assert.Equal(t, theme.Cyber, m.Session().ThemeID())
}

func TestAudioToggle(t *testing.T) {
	audio := &fakeAudio{}
	m := newTestModel(t, Options{Audio: audio})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.True(t, m.audioOn)
	assert.Contains(t, m.View(), "♪ on")
}

func TestCapabilityMessagesDoNotChangeState(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.Session().Snapshot()
	next, _ := m.Update(capabilityMsg{id: loader.Rasterizer, err: errors.New("no chrome")})
	m = next.(Model)
	assert.Equal(t, before, m.Session().Snapshot())
}

func TestInitLoadsCapabilities(t *testing.T) {
	l := loader.New()
	loaded := make(chan loader.ID, 2)
	for _, id := range []loader.ID{loader.Confetti, loader.Rasterizer} {
		id := id
		l.Register(id, func(context.Context) error {
			loaded <- id
			return nil
		})
	}
	m := newTestModel(t, Options{Loader: l})

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(capabilityMsg); ok {
			assert.NoError(t, msg.err)
		}
	}
	assert.True(t, l.Ready(loader.Confetti))
	assert.True(t, l.Ready(loader.Rasterizer))
	assert.Len(t, loaded, 2)
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 116, m.results.Width)
	assert.Equal(t, 112, m.place.Width)
}
