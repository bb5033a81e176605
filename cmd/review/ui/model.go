package ui

import (
	"context"
	"sync"
	"time"

	"quickreview/internal/imageref"
	"quickreview/internal/loader"
	"quickreview/internal/logging"
	"quickreview/internal/poster"
	"quickreview/internal/review"
	"quickreview/internal/theme"
	"quickreview/internal/toast"
	"quickreview/internal/wizard"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// ImageStore turns a picked file into a background reference.
type ImageStore interface {
	Create(path string) (imageref.Ref, error)
	Release(ref imageref.Ref)
}

// Options wires the wizard to its collaborators. Only the zero-value
// defaults are required for a usable (text-only) wizard.
type Options struct {
	Context       context.Context
	Theme         theme.ID
	Format        poster.Format
	ToastDuration time.Duration
	Loader        *loader.Loader
	Images        ImageStore
	Exporter      wizard.PosterExporter
	Audio         wizard.AudioToggler
	Clipboard     wizard.Clipboard
	Seed          uint64
}

type entryField int

const (
	fieldPlace entryField = iota
	fieldService
	fieldRating
	fieldPros
	fieldCons
	entryFieldCount
)

// Messages for tea updates
type (
	// ToastMsg reports a toast change made off the update loop.
	ToastMsg      toast.State
	capabilityMsg struct {
		id  loader.ID
		err error
	}
	exportDoneMsg struct {
		path string
		err  error
	}
	audioMsg bool
)

// programRef lets collaborators running on other goroutines reach the
// program once it exists.
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) set(p *tea.Program) {
	r.mu.Lock()
	r.p = p
	r.mu.Unlock()
}

func (r *programRef) send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		// Send blocks until the loop reads it; never call it from Update.
		go p.Send(msg)
	}
}

// Model is the wizard's bubbletea model.
type Model struct {
	ctx     context.Context
	session *wizard.Session
	toast   *toast.Channel
	loader  *loader.Loader
	images  ImageStore
	program *programRef

	styles   Styles
	keys     keyMap
	help     help.Model
	renderer *glamour.TermRenderer

	// Entry step
	place textinput.Model
	pros  textarea.Model
	cons  textarea.Model
	focus entryField

	// Results step
	variant int
	results viewport.Model

	// Studio step
	imagePath    textinput.Model
	editingImage bool
	imageErr     string
	exporting    bool
	lastExport   string
	spinner      spinner.Model

	// Theme menu
	themeMenu     list.Model
	showThemeMenu bool

	confetti *Confetti
	audioOn  bool

	width  int
	height int
}

// New builds the wizard model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ref := &programRef{}
	ch := toast.New(opts.ToastDuration, toast.WithOnChange(func(st toast.State) {
		ref.send(ToastMsg(st))
	}))

	confetti := NewConfetti(opts.Seed)
	clip := opts.Clipboard
	if clip == nil {
		clip = systemClipboard
	}

	deps := wizard.Deps{
		Notifier:   ch,
		Celebrator: confetti,
		Clipboard:  clip,
		Exporter:   opts.Exporter,
		Audio:      opts.Audio,
	}
	if opts.Loader != nil {
		deps.Capabilities = opts.Loader
	}
	if opts.Images != nil {
		deps.Images = opts.Images
	}
	session := wizard.New(deps, wizard.WithTheme(opts.Theme), wizard.WithPosterFormat(opts.Format))
	styles := NewStyles(session.Theme())

	place := textinput.New()
	place.Placeholder = "مثال: ستاربكس، مطعم الرومانسية..."
	place.Prompt = "│ "
	place.CharLimit = 120
	place.Width = 50
	place.Focus()

	pros := textarea.New()
	pros.Placeholder = "القهوة ممتازة، الديكور رائع..."
	pros.ShowLineNumbers = false
	pros.SetWidth(50)
	pros.SetHeight(2)

	cons := textarea.New()
	cons.Placeholder = "الأسعار مرتفعة قليلاً، الزحام..."
	cons.ShowLineNumbers = false
	cons.SetWidth(50)
	cons.SetHeight(2)

	imagePath := textinput.New()
	imagePath.Placeholder = "/path/to/background.jpg"
	imagePath.Prompt = "📁 "
	imagePath.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 12)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{
		ctx:       ctx,
		session:   session,
		toast:     ch,
		loader:    opts.Loader,
		images:    opts.Images,
		program:   ref,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      help.New(),
		renderer:  renderer,
		place:     place,
		pros:      pros,
		cons:      cons,
		results:   vp,
		imagePath: imagePath,
		spinner:   sp,
		themeMenu: newThemeMenu(styles, session.ThemeID()),
		confetti:  confetti,
		width:     80,
		height:    24,
	}
}

// Session exposes the wizard state.
func (m Model) Session() *wizard.Session { return m.session }

// Init starts the cursor blink and loads the optional capabilities in the
// background.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.loader != nil {
		for _, id := range []loader.ID{loader.Confetti, loader.Rasterizer} {
			cmds = append(cmds, m.loadCapability(id))
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCapability(id loader.ID) tea.Cmd {
	l, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return capabilityMsg{id: id, err: l.EnsureLoaded(ctx, id)}
	}
}

// Update handles a message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ToastMsg:
		return m, nil

	case capabilityMsg:
		log := logging.Get(logging.CategoryLoader)
		if msg.err != nil {
			log.Warn("capability %s unavailable: %v", msg.id, msg.err)
		} else {
			log.Info("capability %s ready", msg.id)
		}
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err == nil {
			m.lastExport = msg.path
		}
		return m, nil

	case audioMsg:
		m.audioOn = bool(msg)
		return m, nil

	case confettiTickMsg:
		m.confetti.Step()
		if m.confetti.Active() {
			return m, confettiTick()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	m.place.Width = inner
	m.pros.SetWidth(inner)
	m.cons.SetWidth(inner)
	m.imagePath.Width = inner
	m.results.Width = width - 4
	m.results.Height = height - 16
	if m.results.Height < 4 {
		m.results.Height = 4
	}
	m.help.Width = width
	m.confetti.Resize(width)
	m.themeMenu.SetSize(width-4, len(theme.IDs())*3+4)
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(inner),
	)
	m.refreshResults()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.showThemeMenu:
		return m.updateThemeMenu(msg)
	case key.Matches(msg, m.keys.Theme):
		m.openThemeMenu()
		return m, nil
	case key.Matches(msg, m.keys.Audio):
		return m, m.toggleAudio()
	case key.Matches(msg, m.keys.Home) && m.session.Step() > wizard.StepEntry && !m.editingImage:
		m.session.Home()
		return m, m.focusEntry(fieldPlace)
	}

	switch m.session.Step() {
	case wizard.StepEntry:
		return m.updateEntry(msg)
	case wizard.StepResults:
		return m.updateResults(msg)
	case wizard.StepStudio:
		return m.updateStudio(msg)
	case wizard.StepPublish:
		return m.updatePublish(msg)
	}
	return m, nil
}

// updateInputs forwards non-key messages (cursor blink) to focused inputs.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.place.Focused() {
		m.place, cmd = m.place.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.pros.Focused() {
		m.pros, cmd = m.pros.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.cons.Focused() {
		m.cons, cmd = m.cons.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.imagePath.Focused() {
		m.imagePath, cmd = m.imagePath.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toggleAudio() tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		return audioMsg(session.ToggleAudio(ctx))
	}
}

func (m *Model) applyTheme(id theme.ID) {
	if !m.session.SetTheme(id) {
		return
	}
	m.styles = NewStyles(m.session.Theme())
	m.spinner.Style = m.styles.Spinner
	m.themeMenu = newThemeMenu(m.styles, id)
	m.themeMenu.SetSize(m.width-4, len(theme.IDs())*3+4)
	m.refreshResults()
}

// ----------------------------------------------------------------------------
// Entry step
// ----------------------------------------------------------------------------

func (m *Model) focusEntry(f entryField) tea.Cmd {
	m.focus = f
	m.place.Blur()
	m.pros.Blur()
	m.cons.Blur()
	switch f {
	case fieldPlace:
		return m.place.Focus()
	case fieldPros:
		return m.pros.Focus()
	case fieldCons:
		return m.cons.Focus()
	}
	return nil
}

func (m *Model) blurEntry() {
	m.place.Blur()
	m.pros.Blur()
	m.cons.Blur()
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusEntry((m.focus + 1) % entryFieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusEntry((m.focus + entryFieldCount - 1) % entryFieldCount)
	case key.Matches(msg, m.keys.Generate):
		return m.generate()
	case key.Matches(msg, m.keys.Select) && m.focus != fieldPros && m.focus != fieldCons:
		return m.generate()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldPlace:
		m.place, cmd = m.place.Update(msg)
		m.session.SetField(review.FieldPlaceName, m.place.Value())
	case fieldPros:
		m.pros, cmd = m.pros.Update(msg)
		m.session.SetField(review.FieldPros, m.pros.Value())
	case fieldCons:
		m.cons, cmd = m.cons.Update(msg)
		m.session.SetField(review.FieldCons, m.cons.Value())
	case fieldService:
		m.cycleService(msg)
	case fieldRating:
		m.adjustRating(msg)
	}
	return m, cmd
}

func (m *Model) cycleService(msg tea.KeyMsg) {
	delta := 0
	switch {
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		delta = 1
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		delta = -1
	default:
		return
	}
	current := 0
	for i, opt := range review.ServiceOptions {
		if opt.Type == m.session.Review().ServiceType {
			current = i
		}
	}
	n := len(review.ServiceOptions)
	next := review.ServiceOptions[(current+delta+n)%n]
	m.session.SetField(review.FieldServiceType, string(next.Type))
}

func (m *Model) adjustRating(msg tea.KeyMsg) {
	rating := m.session.Review().Rating
	switch {
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
		m.session.SetRating(rating + 1)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
		m.session.SetRating(rating - 1)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '5':
		m.session.SetRating(int(msg.Runes[0] - '0'))
	}
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	if !m.session.GenerateReviews() {
		return m, m.focusEntry(fieldPlace)
	}
	m.blurEntry()
	m.variant = 0
	m.refreshResults()
	if m.confetti.Active() {
		return m, confettiTick()
	}
	return m, nil
}

// syncEntry copies the session's form back into the inputs.
func (m *Model) syncEntry() {
	in := m.session.Review()
	m.place.SetValue(in.PlaceName)
	m.pros.SetValue(in.Pros)
	m.cons.SetValue(in.Cons)
}

// ----------------------------------------------------------------------------
// Results step
// ----------------------------------------------------------------------------

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(review.Variants)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.variant = (m.variant + n - 1) % n
		m.refreshResults()
	case key.Matches(msg, m.keys.Down):
		m.variant = (m.variant + 1) % n
		m.refreshResults()
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '3':
		m.variant = int(msg.Runes[0] - '1')
		m.refreshResults()
	case key.Matches(msg, m.keys.Copy):
		m.session.CopyVariant(review.Variants[m.variant])
	case key.Matches(msg, m.keys.Next):
		m.session.GoToStep(wizard.StepStudio)
	case key.Matches(msg, m.keys.Back):
		m.session.GoToStep(wizard.StepEntry)
		m.syncEntry()
		return m, m.focusEntry(fieldPlace)
	default:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshResults() {
	m.results.SetContent(m.renderVariants())
}

// ----------------------------------------------------------------------------
// Studio step
// ----------------------------------------------------------------------------

func (m Model) updateStudio(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingImage {
		return m.updateImagePath(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Format):
		next := poster.FormatPost
		if m.session.PosterConfig().Format == poster.FormatPost {
			next = poster.FormatStory
		}
		m.session.SetPosterFormat(next)
	case key.Matches(msg, m.keys.Image):
		m.editingImage = true
		m.imageErr = ""
		m.imagePath.Reset()
		return m, m.imagePath.Focus()
	case key.Matches(msg, m.keys.Save):
		return m.exportPoster()
	case key.Matches(msg, m.keys.Next):
		m.session.GoToStep(wizard.StepPublish)
	case key.Matches(msg, m.keys.Back):
		m.session.GoToStep(wizard.StepResults)
	}
	return m, nil
}

func (m Model) updateImagePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editingImage = false
		m.imagePath.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.editingImage = false
		m.imagePath.Blur()
		m.pickImage(m.imagePath.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.imagePath, cmd = m.imagePath.Update(msg)
	return m, cmd
}

func (m *Model) pickImage(path string) {
	if path == "" {
		return
	}
	log := logging.Get(logging.CategoryImages)
	if m.images == nil {
		m.imageErr = "image picking is unavailable"
		log.Warn("image picked without a store")
		return
	}
	ref, err := m.images.Create(path)
	if err != nil {
		m.imageErr = err.Error()
		log.Warn("image %s rejected: %v", path, err)
		return
	}
	m.imageErr = ""
	m.session.SetPosterImage(ref)
}

func (m Model) exportPoster() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	d := m.session.Poster()
	if !m.session.ExportReady() {
		// Notifies "still loading" without starting anything.
		_, _ = m.session.ExportDescriptor(m.ctx, d)
		return m, nil
	}

	m.exporting = true
	session, ctx := m.session, m.ctx
	export := func() tea.Msg {
		path, err := session.ExportDescriptor(ctx, d)
		return exportDoneMsg{path: path, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, export)
}

// ----------------------------------------------------------------------------
// Publish step
// ----------------------------------------------------------------------------

func (m Model) updatePublish(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	links := m.session.ShareLinks()
	switch {
	case key.Matches(msg, m.keys.CopyMaps):
		m.session.CopyText(links[0].URL)
	case key.Matches(msg, m.keys.CopyShare):
		m.session.CopyText(links[1].URL)
	case key.Matches(msg, m.keys.Restart):
		m.session.ResetForNewReview()
		m.place.Reset()
		m.pros.Reset()
		m.cons.Reset()
		m.variant = 0
		m.lastExport = ""
		m.imageErr = ""
		m.refreshResults()
		return m, m.focusEntry(fieldPlace)
	case key.Matches(msg, m.keys.Back):
		m.session.GoToStep(wizard.StepStudio)
	}
	return m, nil
}

// Close releases resources held by the model.
func (m Model) Close() {
	m.toast.Close()
	m.session.Close()
}
