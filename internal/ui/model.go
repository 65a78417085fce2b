package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tooldeck/internal/binding"
	"tooldeck/internal/config"
	"tooldeck/internal/contact"
	"tooldeck/internal/debounce"
	"tooldeck/internal/directory"
	"tooldeck/internal/domain"
	"tooldeck/internal/eventbus"
	"tooldeck/internal/feed"
	"tooldeck/internal/logic"
	"tooldeck/internal/prefs"
	"tooldeck/internal/render"
	"tooldeck/internal/theme"
	"tooldeck/internal/ui/input"
	inputtypes "tooldeck/internal/ui/input/types"
	"tooldeck/internal/ui/keys"
	"tooldeck/internal/ui/views"
)

// How long notices stay up
const (
	successNoticeTTL = 8 * time.Second
	errorNoticeTTL   = 10 * time.Second
	statusNoticeTTL  = 3 * time.Second
)

// Submitter posts the contact form
type Submitter interface {
	Submit(ctx context.Context, sub domain.ContactSubmission) error
}

// Externals runs the actions that leave the TUI
type Externals interface {
	SetProgram(p *tea.Program)
	ShowInPager(content string) error
	OpenURL(url string) error
	Copy(text string) error
}

// Model represents the UI state
type Model struct {
	store  *directory.Store
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	width   int
	height  int
	help    help.Model
	keys    keys.Map
	spinner spinner.Model

	inputHandler *input.Handler
	search       *binding.Cell[string] // shared by the header and menu search boxes
	category     *binding.Cell[string] // shared by the header picker and the menu list
	debouncers   map[inputtypes.Mode]*debounce.Debouncer
	unsubscribe  []func()

	mode     theme.Mode
	palette  theme.Palette
	prefsSeq uint64
	list     *views.CardList
	renderer *views.Renderer

	selected int
	offset   int
	failure  string // message of the error panel, "" when the list is shown

	notice   *views.Notice
	noticeID int
	contact  *contactOverlay

	submitter   Submitter
	external    Externals
	spinning    bool
	inPagerMode bool

	ctx    context.Context
	cancel context.CancelFunc

	// Program reference for terminal management and debounced messages
	program *tea.Program
	send    func(tea.Msg)
}

// Option configures a Model
type Option func(*Model)

// WithPreferences sets the theme and palette restored at startup
func WithPreferences(p prefs.Preferences) Option {
	return func(m *Model) {
		m.mode = p.Theme
		m.palette = theme.Resolve(p.Palette)
	}
}

// WithSubmitter replaces the contact form client
func WithSubmitter(s Submitter) Option {
	return func(m *Model) { m.submitter = s }
}

// WithExternals replaces the pager, browser and clipboard operations
func WithExternals(e Externals) Option {
	return func(m *Model) { m.external = e }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) { m.logger = logger.Named("ui") }
}

// WithSender replaces program.Send for messages posted from timers
func WithSender(send func(tea.Msg)) Option {
	return func(m *Model) { m.send = send }
}

// NewModel creates a new UI model
func NewModel(store *directory.Store, bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	defaults := prefs.Defaults()
	km := keys.Default()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		store:        store,
		bus:          bus,
		config:       cfg,
		logger:       zap.NewNop(),
		help:         help.New(),
		keys:         km,
		spinner:      sp,
		inputHandler: input.New(km),
		search:       binding.NewCell(""),
		category:     binding.NewCell(store.Category()),
		mode:         defaults.Theme,
		palette:      theme.Resolve(defaults.Palette),
		list:         views.NewCardList(),
		external:     NewExternalOps(nil),
		ctx:          ctx,
		cancel:       cancel,
	}
	m.send = func(msg tea.Msg) {
		if m.program != nil {
			m.program.Send(msg)
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.submitter == nil {
		m.submitter = contact.NewClient(cfg.Contact.Action, cfg.Contact.Timeout.Duration, contact.WithLogger(m.logger))
	}

	wait := cfg.UI.Debounce.Duration
	m.debouncers = map[inputtypes.Mode]*debounce.Debouncer{
		inputtypes.ModeSearch:     debounce.New(wait, func() { m.post(searchSettledMsg{source: inputtypes.ModeSearch}) }),
		inputtypes.ModeMenuSearch: debounce.New(wait, func() { m.post(searchSettledMsg{source: inputtypes.ModeMenuSearch}) }),
	}

	// Both search boxes render the cell; the store gets the value once debounced
	m.unsubscribe = append(m.unsubscribe,
		m.search.Subscribe(m.inputHandler.SetSearchText),
		m.category.Subscribe(func(category string) {
			m.store.SetCategory(category)
			m.refresh()
		}),
	)

	m.renderer = views.NewRenderer(views.NewStyles(m.palette.For(m.mode)), m.list)
	m.refresh()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.external != nil {
		m.external.SetProgram(p)
	}
}

// Preferences returns the theme and palette currently applied
func (m *Model) Preferences() prefs.Preferences {
	return prefs.Preferences{Theme: m.mode, Palette: m.palette.Key}
}

// post delivers msg to the program from outside the update loop
func (m *Model) post(msg tea.Msg) {
	if m.send != nil {
		m.send(msg)
	}
}

// Init starts the first catalog load
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.contact != nil {
			m.contact.resize(msg.Width)
		}
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		if m.contact != nil {
			return m, m.updateContact(msg)
		}
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var formCmd tea.Cmd
	if m.contact != nil && m.contact.active() {
		formCmd = m.updateForm(msg)
	} else if cmd := m.inputHandler.Update(msg); cmd != nil {
		formCmd = cmd
	}

	model, cmd := m.handleNonKeyboardMsg(msg)
	return model, tea.Batch(formCmd, cmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Store:         m.store,
		SelectedIndex: m.selected,
		ShowsFailure:  m.failure != "",
		PaletteKey:    m.palette.Key,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("action", zap.String("type", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		m.search.Set(a.Text)
		if d := m.debouncers[a.Mode]; d != nil {
			d.Trigger()
		}

	case inputtypes.SubmitTextAction:
		// Enter applies the term now instead of waiting for the debouncer
		m.search.Set(a.Text)
		if d := m.debouncers[a.Mode]; d != nil {
			d.Stop()
		}
		m.applySearch()

	case inputtypes.SelectCategoryAction:
		options := logic.CategoryOptions(m.store.Categories())
		if a.Index >= 0 && a.Index < len(options) {
			m.category.Set(options[a.Index].Value)
		}

	case inputtypes.ClearFiltersAction:
		for _, d := range m.debouncers {
			d.Stop()
		}
		m.search.Set("")
		m.category.Set("")
		m.applySearch()

	case inputtypes.SelectPaletteAction:
		palettes := theme.Palettes()
		if a.Index >= 0 && a.Index < len(palettes) && palettes[a.Index].Key != m.palette.Key {
			m.palette = palettes[a.Index]
			m.applyTheme()
		}

	case inputtypes.ToggleThemeAction:
		m.mode = m.mode.Toggle()
		m.applyTheme()

	case inputtypes.RetryAction:
		return m.load()

	case inputtypes.OpenLinkAction:
		return m.openLink(a.Link)

	case inputtypes.CopyLinkAction:
		return m.copyLink(a.Link)

	case inputtypes.ShowPagerAction:
		return m.showPager()

	case inputtypes.OpenContactAction:
		return m.openContact()

	case inputtypes.DismissNoticeAction:
		m.notice = nil

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case directoryFetchedMsg:
		if err := m.store.FinishLoad(msg.entries, msg.err); err != nil {
			m.showFailure(err)
			return m, nil
		}
		m.refresh()
		return m, nil

	case searchSettledMsg:
		m.applySearch()
		return m, nil

	case contactSentMsg:
		return m, m.handleContactSent(msg.err)

	case contactFormCancelledMsg:
		if m.contact != nil {
			m.closeContact()
		}
		return m, nil

	case contactFormDoneMsg:
		// Submission starts from the form state check in updateForm
		return m, nil

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = nil
		}
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("open link failed", zap.String("link", msg.link), zap.Error(msg.err))
			return m, m.setNotice(fmt.Sprintf("Could not open %s", msg.link), true, statusNoticeTTL)
		}
		return m, nil

	case linkCopiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy link failed", zap.Error(msg.err))
			return m, m.setNotice("Could not copy link to the clipboard", true, statusNoticeTTL)
		}
		return m, m.setNotice("Link copied to clipboard", false, statusNoticeTTL)

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}
	return m, nil
}

// load starts a catalog fetch off the update loop
func (m *Model) load() tea.Cmd {
	m.store.BeginLoad()
	store, ctx := m.store, m.ctx
	fetch := func() tea.Msg {
		entries, err := store.Fetch(ctx)
		return directoryFetchedMsg{entries: entries, err: err}
	}
	return tea.Batch(m.startSpinner(), fetch)
}

func (m *Model) busy() bool {
	return m.store.Loading() || (m.contact != nil && m.contact.sending)
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// applySearch hands the shared search term to the store
func (m *Model) applySearch() {
	m.store.SetSearchTerm(m.search.Get())
	m.refresh()
}

// refresh replaces the list with the store's visible entries
func (m *Model) refresh() {
	m.failure = ""
	if err := render.Render(m.list, m.store.Visible()); err != nil {
		m.logger.Error("render list", zap.Error(err))
	}
	m.selected = 0
	m.offset = 0
}

func (m *Model) showFailure(err error) {
	message := feed.FailureMessage
	var fe *feed.FetchError
	if errors.As(err, &fe) {
		message = fe.UserMessage()
	}
	m.failure = message
	if err := render.RenderFailure(m.list, message); err != nil {
		m.logger.Error("render failure panel", zap.Error(err))
	}
	m.selected = 0
	m.offset = 0
}

func (m *Model) applyTheme() {
	m.renderer.SetStyles(views.NewStyles(m.palette.For(m.mode)))
	m.prefsSeq++
	m.publish(eventbus.PreferencesChangedEvent{Seq: m.prefsSeq, Theme: string(m.mode), Palette: m.palette.Key})
}

func (m *Model) setNotice(text string, isError bool, ttl time.Duration) tea.Cmd {
	m.noticeID++
	id := m.noticeID
	m.notice = &views.Notice{Text: text, Error: isError}
	return tea.Tick(ttl, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
}

func (m *Model) listHeight() int {
	state := views.ViewState{Notice: m.notice, Help: m.helpView()}
	return max(m.height-views.ChromeHeight(state), views.CardHeight)
}

func (m *Model) navigate(direction string) {
	n := m.list.Len()
	if n == 0 {
		return
	}
	page := views.PageSize(m.listHeight())
	switch direction {
	case "up":
		m.selected--
	case "down":
		m.selected++
	case "pageup":
		m.selected -= page
	case "pagedown":
		m.selected += page
	case "home":
		m.selected = 0
	case "end":
		m.selected = n - 1
	}
	m.clampSelection()
}

// clampSelection keeps the selection on a card and the card on screen
func (m *Model) clampSelection() {
	n := m.list.Len()
	m.selected = max(min(m.selected, n-1), 0)

	page := views.PageSize(m.listHeight())
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+page {
		m.offset = m.selected - page + 1
	}
	m.offset = max(min(m.offset, n-page), 0)
}

func (m *Model) openLink(link string) tea.Cmd {
	ext := m.external
	return func() tea.Msg {
		return linkOpenedMsg{link: link, err: ext.OpenURL(link)}
	}
}

func (m *Model) copyLink(link string) tea.Cmd {
	ext := m.external
	return func() tea.Msg {
		return linkCopiedMsg{link: link, err: ext.Copy(link)}
	}
}

// showPager opens what the list currently shows in ov
func (m *Model) showPager() tea.Cmd {
	content := render.Table(m.list.Display(), 60)
	ext := m.external
	return func() tea.Msg {
		m.post(pauseRenderingMsg{})
		err := ext.ShowInPager(content)
		m.post(resumeRenderingMsg{})
		return pagerClosedMsg{err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	for _, d := range m.debouncers {
		d.Stop()
	}
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
	m.cancel()
	return tea.Quit
}

func (m *Model) helpView() string {
	mode := m.inputHandler.CurrentMode()
	switch {
	case mode == inputtypes.ModeContact:
		return ""
	case mode.IsText():
		return m.help.ShortHelpView(m.keys.SearchHelp())
	case mode != inputtypes.ModeNormal:
		return m.help.ShortHelpView(m.keys.PickerHelp())
	}
	return m.help.View(m.keys)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	mode := m.inputHandler.CurrentMode()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         render.DefaultTitle,
		Subtitle:      render.DefaultSubtitle,
		Theme:         string(m.mode),
		Palette:       m.palette.Name,
		HeaderSearch:  m.inputHandler.HeaderInput().View(),
		SearchFocused: mode == inputtypes.ModeSearch,
		CategoryLabel: logic.CategoryLabel(m.store.Category()),
		Loading:       m.store.Loading(),
		Spinner:       m.spinner.View(),
		Visible:       len(m.store.Visible()),
		Total:         len(m.store.All()),
		Selected:      m.selected,
		Offset:        m.offset,
		Notice:        m.notice,
		Help:          m.helpView(),
	}

	if mode.InMenu() {
		state.MenuOpen = true
		state.MenuSearch = m.inputHandler.MenuInput().View()
		state.MenuFocused = mode == inputtypes.ModeMenuSearch
		state.MenuOptions = m.categoryOptions()
		state.MenuCursor = m.inputHandler.Cursor(mode)
	}

	switch mode {
	case inputtypes.ModeCategory:
		state.Overlay = views.OverlayCategory
		state.OverlayTitle = "Category"
		state.PickerOptions = m.categoryOptions()
		state.PickerCursor = m.inputHandler.Cursor(mode)
	case inputtypes.ModePalette:
		state.Overlay = views.OverlayPalette
		state.OverlayTitle = "Color palette"
		state.PickerOptions = m.paletteOptions()
		state.PickerCursor = m.inputHandler.Cursor(mode)
	case inputtypes.ModeContact:
		if m.contact != nil {
			state.Overlay = views.OverlayContact
			state.OverlayTitle = "Contact us"
			state.OverlayBody = m.contactBody()
			// The notice is shown inside the form while it is open
			state.Notice = nil
		}
	}
	return state
}

func (m *Model) categoryOptions() []views.PickerOption {
	current := m.store.Category()
	options := logic.CategoryOptions(m.store.Categories())
	out := make([]views.PickerOption, len(options))
	for i, opt := range options {
		out[i] = views.PickerOption{Label: render.TerminalSafe(opt.Label), Current: opt.Value == current}
	}
	return out
}

func (m *Model) paletteOptions() []views.PickerOption {
	palettes := theme.Palettes()
	out := make([]views.PickerOption, len(palettes))
	for i, p := range palettes {
		out[i] = views.PickerOption{Label: p.Name, Swatch: p.Swatch, Current: p.Key == m.palette.Key}
	}
	return out
}

// quitKey reports whether msg force-quits regardless of mode
func (m *Model) quitKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.keys.ForceQuit)
}
