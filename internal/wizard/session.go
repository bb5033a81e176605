// Package wizard is the four-step review flow as an explicit state
// machine. A Session owns all mutable state of one review: the form
// record, the generated variants, the poster settings and the theme.
// Transitions are synchronous and must be driven from a single goroutine;
// the collaborators it calls out to are responsible for their own
// concurrency.
package wizard

import (
	"quickreview/internal/celebrate"
	"quickreview/internal/imageref"
	"quickreview/internal/loader"
	"quickreview/internal/logging"
	"quickreview/internal/poster"
	"quickreview/internal/review"
	"quickreview/internal/share"
	"quickreview/internal/theme"

	"github.com/google/uuid"
)

// Step is a wizard screen.
type Step int

const (
	StepEntry   Step = 1 // data entry
	StepResults Step = 2 // generated text, tone selection
	StepStudio  Step = 3 // poster studio
	StepPublish Step = 4 // publish and share
)

// Steps lists every step in order.
var Steps = []Step{StepEntry, StepResults, StepStudio, StepPublish}

// Valid reports whether s is one of the four steps.
func (s Step) Valid() bool {
	return s >= StepEntry && s <= StepPublish
}

// Title is the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepEntry:
		return "بيانات التقييم"
	case StepResults:
		return "اختر أسلوبك"
	case StepStudio:
		return "استوديو التصميم"
	case StepPublish:
		return "انشر إبداعك"
	}
	return ""
}

// User-facing notification texts.
const (
	MsgPlaceNameRequired = "يرجى كتابة اسم المكان أولاً"
	MsgCopied            = "تم نسخ النص!"
	MsgPosterSaved       = "تم حفظ البوستر بنجاح!"
	MsgPosterFailed      = "حدث خطأ أثناء حفظ الصورة"
	MsgToolsLoading      = "جاري تحميل أدوات التصميم..."
)

// Notifier shows a transient message.
type Notifier interface {
	Notify(message string)
}

// Celebrator plays the particle burst. Fire-and-forget.
type Celebrator interface {
	Burst(cfg celebrate.Config)
}

// Capabilities reports which optional enhancements are loaded.
type Capabilities interface {
	Ready(id loader.ID) bool
}

// ImageReleaser frees background image references.
type ImageReleaser interface {
	Release(ref imageref.Ref)
}

// Deps are the collaborators a Session calls. Every field is optional;
// a missing collaborator degrades the matching feature only.
type Deps struct {
	Notifier     Notifier
	Celebrator   Celebrator
	Capabilities Capabilities
	Images       ImageReleaser
	Clipboard    Clipboard
	Exporter     PosterExporter
	Audio        AudioToggler
}

// State is a read-only snapshot of a Session.
type State struct {
	Step      Step
	Review    review.Input
	Generated review.Generated
	Poster    poster.Config
	ThemeID   theme.ID
}

// Session is the owned state container of one wizard run.
type Session struct {
	id        string
	step      Step
	review    review.Input
	generated review.Generated
	poster    poster.Config
	themeID   theme.ID
	deps      Deps
	log       *logging.Logger
}

// Option configures a new Session.
type Option func(*Session)

// WithTheme starts the session on a registered theme. Unknown ids are
// ignored.
func WithTheme(id theme.ID) Option {
	return func(s *Session) {
		if theme.Valid(id) {
			s.themeID = id
		}
	}
}

// WithPosterFormat starts the session with a poster format. Unknown
// formats are ignored.
func WithPosterFormat(f poster.Format) Option {
	return func(s *Session) {
		if f.Valid() {
			s.poster.Format = f
		}
	}
}

// New starts a session at the entry step with default data.
func New(deps Deps, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		step:    StepEntry,
		review:  review.NewInput(),
		poster:  poster.DefaultConfig(),
		themeID: theme.Default,
		deps:    deps,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.Get(logging.CategoryWizard).With(map[string]interface{}{"session": s.id})
	s.log.Debug("session started on theme %s", s.themeID)
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Review returns the form record.
func (s *Session) Review() review.Input { return s.review }

// Generated returns the last generated variants; empty before the first
// generate.
func (s *Session) Generated() review.Generated { return s.generated }

// PosterConfig returns the poster settings.
func (s *Session) PosterConfig() poster.Config { return s.poster }

// ThemeID returns the current theme id.
func (s *Session) ThemeID() theme.ID { return s.themeID }

// Theme returns the current theme.
func (s *Session) Theme() theme.Theme { return theme.MustLookup(s.themeID) }

// Snapshot copies the observable state.
func (s *Session) Snapshot() State {
	return State{
		Step:      s.step,
		Review:    s.review,
		Generated: s.generated,
		Poster:    s.poster,
		ThemeID:   s.themeID,
	}
}

// SetField updates one text field of the form. Unknown fields and
// service types outside the closed set are ignored.
func (s *Session) SetField(field review.Field, value string) bool {
	ok := s.review.Set(field, value)
	if !ok {
		s.log.Debug("ignored set of %s", field)
	}
	return ok
}

// SetRating sets the star rating; only 1..5 is accepted.
func (s *Session) SetRating(n int) bool {
	if n < 1 || n > review.MaxRating {
		return false
	}
	s.review.Rating = n
	return true
}

// GenerateReviews renders the variants and advances to the results step.
// With an empty place name it only notifies and returns false.
func (s *Session) GenerateReviews() bool {
	if s.review.PlaceName == "" {
		s.notify(MsgPlaceNameRequired)
		s.log.Info("generate rejected: place name required")
		return false
	}

	s.generated = review.Generate(s.review)
	s.step = StepResults
	s.log.Info("generated reviews for %q (rating %d)", s.review.PlaceName, s.review.Rating)

	if s.deps.Celebrator != nil && s.capable(loader.Confetti) {
		s.deps.Celebrator.Burst(celebrate.ForTheme(s.themeID))
	}
	return true
}

// GoToStep jumps to any step without checking earlier steps were
// completed. Values outside 1..4 are ignored.
func (s *Session) GoToStep(n Step) bool {
	if !n.Valid() {
		return false
	}
	if n != s.step {
		s.log.Debug("step %d -> %d", s.step, n)
	}
	s.step = n
	return true
}

// Home returns to the entry step.
func (s *Session) Home() { s.GoToStep(StepEntry) }

// SetTheme switches the theme. Only registered ids are accepted; no other
// state changes.
func (s *Session) SetTheme(id theme.ID) bool {
	if !theme.Valid(id) {
		return false
	}
	s.themeID = id
	return true
}

// SetPosterFormat switches between the story and post presets.
func (s *Session) SetPosterFormat(f poster.Format) bool {
	if !f.Valid() {
		return false
	}
	s.poster.Format = f
	return true
}

// SetPosterImage stores a new background reference and releases the one
// it replaces.
func (s *Session) SetPosterImage(ref imageref.Ref) {
	prev := s.poster.Background
	s.poster.Background = ref
	if prev != ref {
		s.release(prev)
	}
}

// ResetForNewReview clears the form, the generated text and the background
// image and returns to the entry step. The theme and poster format are
// kept.
func (s *Session) ResetForNewReview() {
	s.release(s.poster.Background)
	s.review = review.NewInput()
	s.generated = review.Generated{}
	s.poster.Background = ""
	s.step = StepEntry
	s.log.Info("reset for new review")
}

// Poster describes the poster for the current state.
func (s *Session) Poster() poster.Descriptor {
	return poster.Compose(s.review, s.Theme(), s.poster)
}

// ShareLinks returns the map-search and message-share links.
func (s *Session) ShareLinks() []share.Link {
	return share.PublishLinks(s.review.PlaceName, s.generated.Medium)
}

// Close releases the background reference.
func (s *Session) Close() {
	s.release(s.poster.Background)
	s.poster.Background = ""
}

func (s *Session) notify(msg string) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(msg)
	}
}

func (s *Session) release(ref imageref.Ref) {
	if ref.IsZero() || s.deps.Images == nil {
		return
	}
	s.deps.Images.Release(ref)
}

// capable treats a missing capability source as "everything loaded".
func (s *Session) capable(id loader.ID) bool {
	if s.deps.Capabilities == nil {
		return true
	}
	return s.deps.Capabilities.Ready(id)
}
