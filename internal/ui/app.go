package ui

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/share"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

// RecordStore persists user-authored and imported recipe documents.
// Unlike state snapshots, record failures are surfaced to the user.
type RecordStore interface {
	PutRecipe(recipe.Recipe) (recipe.Recipe, error)
	DeleteRecipe(id int64) error
}

// ThemeFeed carries resolved dark/light decisions from the state store
// into the running program. It implements state.ThemeApplier.
type ThemeFeed struct {
	mu   sync.Mutex
	dark bool
	ch   chan bool
}

// NewThemeFeed returns a feed ready to hand to state.InitOptions.
func NewThemeFeed() *ThemeFeed {
	return &ThemeFeed{ch: make(chan bool, 8)}
}

// ApplyTheme records the decision and wakes the theme listener.
func (f *ThemeFeed) ApplyTheme(dark bool) {
	f.mu.Lock()
	f.dark = dark
	f.mu.Unlock()
	select {
	case f.ch <- dark:
	default:
	}
}

// Dark returns the most recently applied decision.
func (f *ThemeFeed) Dark() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Records    RecordStore
	Theme      *ThemeFeed
	ShareBase  string       // base URL share links are built on
	Params     share.Params // share parameters the app was opened with
	DataDir    string       // shown on the settings tab
	CatalogDir string
	Log        *slog.Logger
}

// importKind identifies which import prompt is open, if any.
type importKind int

const (
	importNone importKind = iota
	importBasket
	importRecipe
)

// Model is the root application state for Bubble Tea.
type Model struct {
	store      *state.Store
	records    RecordStore
	themes     *ThemeFeed
	shareBase  string
	dataDir    string
	catalogDir string
	log        *slog.Logger

	theme  Theme
	styles Styles
	width  int
	height int
	ready  bool

	st state.State

	// Recipes tab
	cursor     int
	search     textinput.Model
	searching  bool
	filterOpen bool
	filterRow  int

	// Detail / cook
	detailViewport viewport.Model
	commentInput   textinput.Model
	commenting     bool

	// New-recipe form, nil while closed
	form *recipeForm

	// Shopping tab
	shopCursor int
	itemInput  textinput.Model
	addingItem bool

	// Settings tab
	settingsRow int

	// Pending import prompt
	importing     importKind
	pendingBasket *share.Basket
	pendingRecipe *recipe.Recipe

	showHelp bool
	status   string
}

// New creates the root model.
func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dark := true
	if opts.Theme != nil {
		dark = opts.Theme.Dark()
	}
	theme := GetTheme(dark)

	search := textinput.New()
	search.Placeholder = "search recipes"
	search.CharLimit = 80

	comment := textinput.New()
	comment.Placeholder = "add a comment"
	comment.CharLimit = 200

	item := textinput.New()
	item.Placeholder = "name, amount, category, aisle"
	item.CharLimit = 120

	m := Model{
		store:        opts.Store,
		records:      opts.Records,
		themes:       opts.Theme,
		shareBase:    opts.ShareBase,
		dataDir:      opts.DataDir,
		catalogDir:   opts.CatalogDir,
		log:          log,
		theme:        theme,
		styles:       theme.Styles(),
		search:       search,
		commentInput: comment,
		itemInput:    item,
	}
	if opts.Store != nil {
		m.st = opts.Store.Read()
	}
	m.queueImport(opts.Params)
	return m
}

// queueImport resolves startup share parameters into either direct
// navigation or a pending prompt. Irrelevant or malformed parameters
// are dropped with a status note, never a failed start.
func (m *Model) queueImport(params share.Params) {
	switch {
	case params.RecipeID != 0:
		if recipe.FindByID(m.st.Recipes, params.RecipeID) == nil {
			m.status = "Shared recipe not found"
			return
		}
		m.mutate(func(st *state.State) {
			st.SelectedID = params.RecipeID
			st.ViewMode = state.ViewOverview
		})

	case params.Basket != "":
		basket, err := share.DecodeBasket(params.Basket)
		if err != nil {
			m.log.Warn("decode shared basket", "error", err)
			m.status = "Shared list link is invalid"
			return
		}
		if len(m.st.ShoppingList) == 0 {
			// Nothing to merge with, import directly.
			m.applyBasket(basket, false)
			m.status = "Shared list imported"
			return
		}
		m.pendingBasket = basket
		m.importing = importBasket

	case params.SharedRecipe != "":
		r, err := share.DecodeRecipe(params.SharedRecipe)
		if err != nil {
			m.log.Warn("decode shared recipe", "error", err)
			m.status = "Shared recipe link is invalid"
			return
		}
		m.pendingRecipe = r
		m.importing = importRecipe
	}
}

// mutate applies fn through the store and refreshes the local copy so
// the next render sees the committed state.
func (m *Model) mutate(fn func(*state.State)) {
	if m.store == nil {
		return
	}
	m.store.Mutate(fn)
	m.st = m.store.Read()
}

// mutateQuiet is mutate without the subscriber pass, for cursor-grade
// changes the model itself redraws.
func (m *Model) mutateQuiet(fn func(*state.State)) {
	if m.store == nil {
		return
	}
	m.store.MutateQuiet(fn)
	m.st = m.store.Read()
}

// Messages

type themeMsg bool

type stateMsg state.State

func listenTheme(feed *ThemeFeed) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		return themeMsg(<-feed.ch)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := listenTheme(m.themes); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, max(msg.Height-4, 1))
			m.ready = true
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = max(msg.Height-4, 1)
		}
		m.refreshDetailViewport()
		return m, nil

	case themeMsg:
		m.theme = GetTheme(bool(msg))
		m.styles = m.theme.Styles()
		m.refreshDetailViewport()
		return m, listenTheme(m.themes)

	case stateMsg:
		m.st = state.State(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.importing != importNone {
		return m.renderImportPrompt()
	}
	if m.form != nil {
		return m.renderForm()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.st.ActiveTab {
	case state.TabShopping:
		return m.renderShopping()
	case state.TabSettings:
		return m.renderSettings()
	default:
		if m.filterOpen {
			return m.renderFilters()
		}
		if m.st.SelectedID != 0 {
			if m.st.ViewMode == state.ViewStep {
				return m.renderCook()
			}
			return m.renderDetail()
		}
		return m.renderBrowse()
	}
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)

	var unsubscribe func()
	if opts.Store != nil {
		// Subscribers run synchronously inside Mutate, which the model
		// itself calls from Update. Send must not block that path, so
		// the forward happens on its own goroutine; stateMsg carries
		// the full committed state, so late delivery is harmless.
		unsubscribe = opts.Store.Subscribe(func(st state.State) {
			go p.Send(stateMsg(st))
		})
		defer unsubscribe()
	}

	_, err := p.Run()
	return err
}
