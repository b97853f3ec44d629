// internal/tui/app.go
//
// This is the terminal rendition of the Winchester & Associates site.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: the shell state, the carousel and the widgets
// 2. Update: turns key presses, ticks and focus changes into state changes
// 3. View: paints the current snapshot
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kingrea/winchester/internal/carousel"
	"github.com/kingrea/winchester/internal/catalog"
	"github.com/kingrea/winchester/internal/chart"
	"github.com/kingrea/winchester/internal/config"
	"github.com/kingrea/winchester/internal/intake"
	"github.com/kingrea/winchester/internal/logbook"
	"github.com/kingrea/winchester/internal/shell"
)

const (
	handoffTimeout = 10 * time.Second
	logPanelLines  = 6
	headerHeight   = 3
	footerHeight   = 4
)

// pageFocus says which page-level widget receives keys when no overlay is open.
type pageFocus int

const (
	focusPage pageFocus = iota
	focusNewsletter
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithCatalog replaces the content catalog.
func WithCatalog(cat *catalog.Catalog) AppOption {
	return func(a *App) {
		if cat != nil {
			a.catalog = cat
		}
	}
}

// WithHandoff sets the submission endpoint.
func WithHandoff(h intake.Handoff) AppOption {
	return func(a *App) {
		if h != nil {
			a.handoff = h
		}
	}
}

// WithLogger mirrors the journal to a process logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithAutoplayInterval overrides the configured carousel interval.
func WithAutoplayInterval(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.autoplayInterval = d
		}
	}
}

// slideAdvancedMsg is delivered after the autoplay timer moves the carousel.
type slideAdvancedMsg struct {
	state carousel.State
}

// submissionResultMsg reports the outcome of a handoff.
type submissionResultMsg struct {
	sub intake.Submission
	err error
}

// navItem implements list.Item for the navigation menu.
type navItem struct {
	section shell.Section
}

func (i navItem) Title() string       { return i.section.Label() }
func (i navItem) Description() string { return "#" + string(i.section) }
func (i navItem) FilterValue() string { return i.section.Label() }

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config   *config.Config
	catalog  *catalog.Catalog
	shell    *shell.Machine
	carousel *carousel.Controller
	autoplay *carousel.Autoplay
	logbook  *logbook.Logbook
	logger   *zap.Logger
	handoff  intake.Handoff

	chartSpec        chart.Spec
	required         []string
	autoplayInterval time.Duration
	autoplayWanted   bool

	// slides carries autoplay advances from the timer goroutine to Update.
	slides chan carousel.State
	ctx    context.Context
	cancel context.CancelFunc

	// pendingID is the consultation submission awaiting its handoff result.
	pendingID string

	// UI components
	keys       keyMap
	help       help.Model
	navMenu    list.Model
	form       consultationForm
	newsletter textinput.Model
	page       viewport.Model
	anchors    map[shell.Section]int
	focus      pageFocus
	statusMsg  string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance for projectDir.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	app := &App{
		config:           cfg,
		logger:           zap.NewNop(),
		required:         cfg.RequiredFields(),
		autoplayInterval: cfg.AutoplayInterval(),
		autoplayWanted:   true,
		keys:             defaultKeyMap(),
		help:             help.New(),
		anchors:          map[shell.Section]int{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	if app.catalog == nil {
		if app.catalog, err = loadCatalog(cfg); err != nil {
			return nil, err
		}
	}
	if app.chartSpec, err = chart.Preset(cfg.ChartPreset()); err != nil {
		return nil, err
	}

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "journey.log"), app.logger)
	if err != nil {
		app.logger.Warn("session journal unavailable", zap.String("dir", cfg.LogsDir()), zap.Error(err))
	} else {
		app.logbook = lb
	}
	if app.handoff == nil {
		app.handoff = app.journalHandoff
	}

	two, three := cfg.Breakpoints()
	app.shell = shell.New(app.catalog)
	app.carousel = carousel.New(
		carousel.WithInterval(app.autoplayInterval),
		carousel.WithBreakpoints(carousel.Breakpoints{Two: two, Three: three}),
	)
	app.carousel.Bind(app.activeCaseResults())
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.slides = make(chan carousel.State, 1)
	app.autoplay = carousel.NewAutoplay(app.carousel, app.notifyAdvance)

	app.navMenu = newNavMenu()
	app.form = newConsultationForm(app.shell.PracticeAreas())
	app.newsletter = textinput.New()
	app.newsletter.Placeholder = "Your email"
	app.newsletter.Width = 32
	app.page = viewport.New(80, 20)

	app.logInfo("Session opened · %d practice areas · %d case results", len(app.catalog.PracticeAreas()), len(app.catalog.CaseResults()))
	app.refreshPage()
	return app, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if path := cfg.CatalogPath(); path != "" {
		return catalog.Load(path)
	}
	return catalog.Default()
}

func newNavMenu() list.Model {
	items := make([]list.Item, len(shell.Sections))
	for i, section := range shell.Sections {
		items[i] = navItem{section: section}
	}
	menu := list.New(items, list.NewDefaultDelegate(), 30, len(items)*3+2)
	menu.Title = "Navigate"
	menu.SetShowStatusBar(false)
	menu.SetShowHelp(false)
	menu.SetFilteringEnabled(false)
	return menu
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// journalHandoff is the default submission endpoint: it records the request.
func (a *App) journalHandoff(_ context.Context, sub intake.Submission) error {
	a.logInfo("Submit requested · %s %s", sub.Form, sub.ID)
	a.logger.Info("submission requested",
		zap.String("id", sub.ID),
		zap.String("form", string(sub.Form)),
		zap.Int("fields", len(sub.Fields)),
	)
	return nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	a.autoplay.Start(a.ctx)
	return a.listenForSlides()
}

// Close stops autoplay and releases the slide listener. It must run on every
// exit path; calling it more than once is fine.
func (a *App) Close() {
	a.autoplay.Stop()
	a.cancel()
}

// notifyAdvance runs on the autoplay goroutine and never blocks. A queued
// notification is enough: the refresh reads the latest state.
func (a *App) notifyAdvance(state carousel.State) {
	select {
	case a.slides <- state:
	default:
	}
}

// listenForSlides waits for the next autoplay advance. Exactly one listener is
// outstanding at a time; it returns nil once the app is closed.
func (a *App) listenForSlides() tea.Cmd {
	slides, done := a.slides, a.ctx.Done()
	return func() tea.Msg {
		select {
		case state := <-slides:
			return slideAdvancedMsg{state: state}
		case <-done:
			return nil
		}
	}
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.page.Width = max(20, msg.Width)
		a.page.Height = max(5, msg.Height-headerHeight-footerHeight)
		a.navMenu.SetSize(30, min(a.page.Height, len(shell.Sections)*3+2))
		a.refreshPage()
		return a, nil

	case slideAdvancedMsg:
		a.refreshPage()
		return a, a.listenForSlides()

	case tea.BlurMsg:
		a.autoplay.Stop()
		a.logInfo("Focus lost · autoplay suspended")
		a.refreshPage()
		return a, nil

	case tea.FocusMsg:
		if a.autoplayWanted && !a.autoplay.Running() {
			a.autoplay.Start(a.ctx)
			a.refreshPage()
		}
		return a, nil

	case submissionResultMsg:
		return a.handleSubmissionResult(msg)

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			a.Close()
			return a, tea.Quit
		}
		state := a.shell.Snapshot()
		switch {
		case state.ModalOpen:
			return a.updateModal(msg)
		case state.MenuOpen:
			return a.updateMenu(msg)
		case a.focus == focusNewsletter:
			return a.updateNewsletter(msg)
		default:
			return a.updatePage(msg)
		}
	}

	var cmds []tea.Cmd
	if a.shell.Snapshot().ModalOpen {
		if cmd := a.form.update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if a.focus == focusNewsletter {
		var inputCmd tea.Cmd
		a.newsletter, inputCmd = a.newsletter.Update(msg)
		if inputCmd != nil {
			cmds = append(cmds, inputCmd)
		}
	}
	var pageCmd tea.Cmd
	a.page, pageCmd = a.page.Update(msg)
	if pageCmd != nil {
		cmds = append(cmds, pageCmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.Close()
		return a, tea.Quit
	case key.Matches(msg, a.keys.Menu):
		a.shell.ToggleMenu()
		return a, nil
	case key.Matches(msg, a.keys.Consult):
		return a.openConsultation()
	case key.Matches(msg, a.keys.NextFilter):
		return a.cycleFilter(1)
	case key.Matches(msg, a.keys.PrevFilter):
		return a.cycleFilter(-1)
	case key.Matches(msg, a.keys.NextSlide):
		a.carousel.Advance()
		a.restartAutoplay()
		return a, nil
	case key.Matches(msg, a.keys.PrevSlide):
		a.carousel.Retreat()
		a.restartAutoplay()
		return a, nil
	case key.Matches(msg, a.keys.GoToSlide):
		index := int(msg.String()[0] - '1')
		if err := a.carousel.GoTo(index); err != nil {
			a.statusMsg = fmt.Sprintf("No slide %d", index+1)
			a.logWarn("Carousel · %v", err)
			return a, nil
		}
		a.restartAutoplay()
		return a, nil
	case key.Matches(msg, a.keys.Autoplay):
		a.toggleAutoplay()
		return a, nil
	case key.Matches(msg, a.keys.Newsletter):
		a.focus = focusNewsletter
		cmd := a.newsletter.Focus()
		a.jumpTo(shell.SectionContact)
		return a, cmd
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close), key.Matches(msg, a.keys.Menu):
		a.shell.ToggleMenu()
		return a, nil
	case key.Matches(msg, a.keys.Select):
		item, ok := a.navMenu.SelectedItem().(navItem)
		if !ok {
			return a, nil
		}
		if err := a.shell.NavigateTo(item.section); err != nil {
			a.statusMsg = err.Error()
			return a, nil
		}
		a.jumpTo(item.section)
		a.logInfo("Menu · %s", item.section.Label())
		return a, nil
	}
	var cmd tea.Cmd
	a.navMenu, cmd = a.navMenu.Update(msg)
	return a, cmd
}

func (a *App) updateNewsletter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.focus = focusPage
		a.newsletter.Blur()
		a.refreshPage()
		return a, nil
	case key.Matches(msg, a.keys.Select):
		fields := map[string]string{intake.FieldEmail: a.newsletter.Value()}
		sub, err := intake.Request(intake.FormNewsletter, fields, intake.DefaultRequired(intake.FormNewsletter))
		if err != nil {
			a.statusMsg = "Enter an email address to subscribe"
			a.logWarn("Newsletter · %v", err)
			return a, nil
		}
		a.focus = focusPage
		a.newsletter.Blur()
		a.newsletter.SetValue("")
		a.refreshPage()
		return a, a.submit(sub)
	}
	var cmd tea.Cmd
	a.newsletter, cmd = a.newsletter.Update(msg)
	a.refreshPage()
	return a, cmd
}

func (a *App) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.shell.CloseConsultationModal()
		a.pendingID = ""
		a.statusMsg = "Consultation cancelled"
		return a, nil
	case key.Matches(msg, a.keys.NextField):
		return a, a.form.cycle(1)
	case key.Matches(msg, a.keys.PrevField):
		return a, a.form.cycle(-1)
	case key.Matches(msg, a.keys.Submit):
		return a.submitConsultation()
	case a.form.focus == fieldArea && key.Matches(msg, a.keys.Select):
		area, ok := a.form.selectedArea()
		if !ok {
			return a, nil
		}
		if err := a.shell.SelectConsultationArea(area); err != nil {
			a.statusMsg = err.Error()
			a.logWarn("Consultation · %v", err)
			return a, nil
		}
		if a.form.invalid == intake.FieldArea {
			a.form.invalid = ""
		}
		return a, a.form.cycle(1)
	}
	return a, a.form.update(msg)
}

func (a *App) openConsultation() (tea.Model, tea.Cmd) {
	a.shell.OpenConsultationModal()
	a.statusMsg = ""
	a.logInfo("Consultation · modal opened")
	return a, a.form.reset()
}

func (a *App) submitConsultation() (tea.Model, tea.Cmd) {
	if a.pendingID != "" {
		a.statusMsg = "Still sending your consultation request..."
		return a, nil
	}
	fields := a.form.values(a.shell.Snapshot())
	sub, err := intake.Request(intake.FormConsultation, fields, a.required)
	if err != nil {
		var missing *intake.MissingFieldError
		if errors.As(err, &missing) {
			a.statusMsg = fmt.Sprintf("Please fill in %s", missing.Name)
			a.logWarn("Consultation · %v", err)
			return a, a.form.highlight(missing.Name)
		}
		a.statusMsg = err.Error()
		return a, nil
	}
	a.form.invalid = ""
	a.pendingID = sub.ID
	a.statusMsg = "Sending consultation request..."
	return a, a.submit(sub)
}

// submit hands sub to the endpoint off the update loop.
func (a *App) submit(sub intake.Submission) tea.Cmd {
	handoff := a.handoff
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), handoffTimeout)
		defer cancel()
		return submissionResultMsg{sub: sub, err: handoff(ctx, sub)}
	}
}

func (a *App) handleSubmissionResult(msg submissionResultMsg) (tea.Model, tea.Cmd) {
	// Only the result for the request the open modal is waiting on may close it.
	current := msg.sub.Form == intake.FormConsultation && msg.sub.ID == a.pendingID
	if current {
		a.pendingID = ""
	}
	if msg.err != nil {
		a.statusMsg = fmt.Sprintf("Submission failed: %v", msg.err)
		a.logError("Submission %s failed: %v", msg.sub.ID, msg.err)
		return a, nil
	}
	switch msg.sub.Form {
	case intake.FormConsultation:
		if current {
			a.shell.CloseConsultationModal()
		}
		a.statusMsg = "Thank you! We will contact you shortly."
	case intake.FormNewsletter:
		a.statusMsg = "Subscribed to the newsletter."
	}
	a.logInfo("Submission %s delivered", msg.sub.ID)
	return a, nil
}

func (a *App) cycleFilter(delta int) (tea.Model, tea.Cmd) {
	filters := a.shell.Filters()
	current := 0
	active := a.shell.Snapshot().ActiveFilter
	for i, tag := range filters {
		if tag == active {
			current = i
			break
		}
	}
	next := filters[(current+delta+len(filters))%len(filters)]
	a.applyFilter(next)
	return a, nil
}

// applyFilter changes the filter and rebinds the carousel to the matching
// case results. Autoplay is stopped for the rebind and restarted after.
func (a *App) applyFilter(tag string) {
	if err := a.shell.SetActiveFilter(tag); err != nil {
		a.statusMsg = err.Error()
		a.logWarn("Filter · %v", err)
		return
	}
	running := a.autoplay.Running()
	a.autoplay.Rebind(a.activeCaseResults())
	if running {
		a.autoplay.Start(a.ctx)
	}
	a.statusMsg = fmt.Sprintf("Showing %s", strings.ToLower(filterLabel(tag)))
	a.refreshPage()
}

func (a *App) activeCaseResults() []catalog.Item {
	return catalog.OfKind(a.shell.ActiveItems(), catalog.KindCaseResult)
}

// restartAutoplay restarts the countdown after a manual slide change.
func (a *App) restartAutoplay() {
	if a.autoplay.Running() {
		a.autoplay.Stop()
		a.autoplay.Start(a.ctx)
	}
	a.refreshPage()
}

func (a *App) toggleAutoplay() {
	if a.autoplay.Running() {
		a.autoplay.Stop()
		a.autoplayWanted = false
		a.statusMsg = "Carousel paused"
	} else {
		a.autoplay.Start(a.ctx)
		a.autoplayWanted = true
		a.statusMsg = "Carousel playing"
	}
	a.refreshPage()
}

// viewportPixels scales the terminal width to the site's pixel breakpoints.
func (a *App) viewportPixels() int {
	return a.width * a.config.PixelsPerColumn()
}

// refreshPage rebuilds the scrollable body after any state change.
func (a *App) refreshPage() {
	offset := a.page.YOffset
	p := a.buildPage(a.page.Width)
	a.anchors = p.anchors
	a.page.SetContent(p.content)
	a.page.SetYOffset(offset)
}

// jumpTo scrolls the body to an anchor.
func (a *App) jumpTo(section shell.Section) {
	a.refreshPage()
	a.page.SetYOffset(a.anchors[section])
}

func filterLabel(tag string) string {
	if tag == catalog.FilterAll {
		return "All"
	}
	return tag
}
