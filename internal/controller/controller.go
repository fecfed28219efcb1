package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/validate"
)

var (
	// ErrSubmissionInFlight is returned when a submission is already running
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrTierUnavailable is returned when selecting a tier that cannot be generated
	ErrTierUnavailable = errors.New("template tier is not available")

	// ErrRetryNotAllowed is returned by Retry outside a failed state or past the cap
	ErrRetryNotAllowed = errors.New("retry is not allowed")

	// ErrNoTier is returned when submitting without a selected template
	ErrNoTier = errors.New("no template selected")

	// ErrInvalidInput is returned when the names fail validation
	ErrInvalidInput = errors.New("invalid project input")

	// ErrStaleSession is returned when the dialog was closed before the result arrived
	ErrStaleSession = errors.New("submission result ignored: dialog was closed")
)

// Generator produces an archive for a tier
type Generator interface {
	Generate(ctx context.Context, tier model.Tier, req model.GenerationRequest) (*model.GenerationResult, error)
}

// Downloader saves an archive and returns its final path
type Downloader interface {
	Download(payload []byte, filename string) (string, error)
}

// TierChecker reports which tiers can be generated
type TierChecker interface {
	IsAvailable(tier model.Tier) bool
}

// Controller owns the form state. All methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)

	generator  Generator
	downloader Downloader
	tiers      TierChecker
	texts      Texts
	logger     logrus.FieldLogger
}

// Option configures a Controller
type Option func(*Controller)

// WithTexts sets the localization used for messages
func WithTexts(t Texts) Option {
	return func(c *Controller) {
		if t != nil {
			c.texts = t
		}
	}
}

// WithTierChecker restricts selectable tiers
func WithTierChecker(tc TierChecker) Option {
	return func(c *Controller) {
		c.tiers = tc
	}
}

// WithLogger sets the controller logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller in its initial state
func New(gen Generator, dl Downloader, opts ...Option) *Controller {
	c := &Controller{
		state:      initialState(),
		generator:  gen,
		downloader: dl,
		texts:      i18n.NewLocalization(),
		logger:     logging.StdLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers an observer called with a snapshot after every change.
// Observers run on the goroutine that caused the change.
func (c *Controller) OnChange(fn func(State)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// CanRetry reports whether a retry is currently offered
func (c *Controller) CanRetry() bool {
	return c.State().CanRetry()
}

// RetryStatus returns "Retry attempt N/3" once a retry happened, else ""
func (c *Controller) RetryStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.RetryCount == 0 {
		return ""
	}
	return fmt.Sprintf(c.texts.GetText(i18n.KeyRetryAttempt), c.state.RetryCount, MaxRetries)
}

// update applies fn under the lock and notifies observers afterwards
func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	c.unlockAndNotify()
}

// unlockAndNotify releases c.mu and passes a snapshot to every observer
func (c *Controller) unlockAndNotify() {
	snapshot := c.state.clone()
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// SelectTier chooses the template to generate
func (c *Controller) SelectTier(tier model.Tier) error {
	if c.tiers != nil && !c.tiers.IsAvailable(tier) {
		return fmt.Errorf("%w: %s", ErrTierUnavailable, tier)
	}
	c.update(func(s *State) {
		s.Tier = tier
	})
	return nil
}

// OpenDialog opens the customize dialog and starts a new session
func (c *Controller) OpenDialog() {
	c.update(func(s *State) {
		s.DialogOpen = true
		s.Session++
	})
}

// CloseDialog closes the dialog and clears transient error state. A running
// submission keeps running; its result is ignored.
func (c *Controller) CloseDialog() {
	c.update(func(s *State) {
		s.DialogOpen = false
		s.Session++
		s.ErrorMessage = ""
		s.ValidationErrors = nil
		s.RetryCount = 0
		if !s.Status.IsActive() {
			s.Status = model.StatusIdle
		}
	})
}

// SetProjectName updates the project name and clears its validation error
func (c *Controller) SetProjectName(name string) {
	c.update(func(s *State) {
		s.ProjectName = name
		delete(s.ValidationErrors, validate.FieldProjectName)
	})
}

// SetPackageName updates the package name and clears its validation error
func (c *Controller) SetPackageName(name string) {
	c.update(func(s *State) {
		s.PackageName = name
		delete(s.ValidationErrors, validate.FieldPackageName)
	})
}

// SetNetworkLibrary selects the HTTP client library
func (c *Controller) SetNetworkLibrary(lib model.NetworkLibrary) {
	c.update(func(s *State) {
		s.Libraries.Network = lib
	})
}

// SetDILibrary selects the dependency injection library
func (c *Controller) SetDILibrary(lib model.DILibrary) {
	c.update(func(s *State) {
		s.Libraries.DI = lib
	})
}

// SetAnnotationProcessor selects KAPT or KSP
func (c *Controller) SetAnnotationProcessor(p model.AnnotationProcessor) {
	c.update(func(s *State) {
		s.Libraries.Processor = p
	})
}

// Submit starts a fresh submission and blocks until it finishes
func (c *Controller) Submit(ctx context.Context) error {
	return c.run(ctx, false)
}

// Retry reruns the whole submission, validation included
func (c *Controller) Retry(ctx context.Context) error {
	return c.run(ctx, true)
}

// submission is what the pipeline needs once the lock is released
type submission struct {
	id      string
	session uint64
	tier    model.Tier
	request model.GenerationRequest
}

func (c *Controller) run(ctx context.Context, retry bool) error {
	c.mu.Lock()
	st := &c.state
	if st.Busy {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if retry {
		if !st.CanRetry() {
			c.mu.Unlock()
			return ErrRetryNotAllowed
		}
		st.RetryCount++
	} else {
		st.RetryCount = 0
	}
	st.ErrorMessage = ""
	st.ValidationErrors = nil
	st.SavedPath = ""

	if !st.HasTier() {
		st.Status = model.StatusFailed
		st.ErrorMessage = c.texts.GetText(i18n.KeyPleaseChooseFirst)
		c.unlockAndNotify()
		return ErrNoTier
	}

	st.Status = model.StatusValidating
	errs := validate.ValidateLang(c.texts.GetCurrentLanguage(), st.ProjectName, st.PackageName)
	if !errs.Valid() {
		st.Status = model.StatusFailedValidation
		st.ValidationErrors = errs
		c.unlockAndNotify()
		return ErrInvalidInput
	}

	st.Status = model.StatusSubmitting
	st.Busy = true
	st.SubmissionID = model.NewSubmissionID()
	sub := submission{
		id:      st.SubmissionID,
		session: st.Session,
		tier:    st.Tier,
		request: model.NewGenerationRequest(st.ProjectName, st.PackageName, st.Libraries),
	}
	c.unlockAndNotify()

	ctx = logging.WithSubmission(ctx, sub.id)
	log := logging.FromContext(ctx, c.logger).WithFields(logrus.Fields{
		logging.FieldTier: sub.tier,
		"retry":           retry,
	})
	log.Info("Submitting generation request")

	path, err := c.execute(ctx, sub)

	c.update(func(s *State) {
		s.Busy = false
		if s.Session != sub.session {
			log.Info("Ignoring result of a closed dialog")
			if s.Status.IsActive() {
				s.Status = model.StatusIdle
			}
			err = ErrStaleSession
			return
		}
		if err != nil {
			s.Status = model.StatusFailed
			s.ErrorMessage = UserMessage(err, c.texts)
			return
		}
		s.Status = model.StatusSuccess
		s.DialogOpen = false
		s.ErrorMessage = ""
		s.ValidationErrors = nil
		s.RetryCount = 0
		s.SavedPath = path
	})

	if err != nil {
		log.WithError(err).Warn("Submission failed")
		return err
	}
	log.WithField("path", path).Info("Submission completed")
	return nil
}

// execute generates and, if the session is still current, downloads
func (c *Controller) execute(ctx context.Context, sub submission) (string, error) {
	result, err := c.generator.Generate(ctx, sub.tier, sub.request)
	if err != nil {
		return "", err
	}

	if !c.sessionCurrent(sub.session) {
		return "", ErrStaleSession
	}
	return c.downloader.Download(result.Payload, result.Filename)
}

func (c *Controller) sessionCurrent(session uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Session == session
}
