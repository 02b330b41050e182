package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mushroomsink/mushrooms/internal/browser"
	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/config"
	"github.com/mushroomsink/mushrooms/internal/dropdown"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

type page int

const (
	pageCompanies page = iota
	pageResearch
	pageReports
)

func parsePage(s string) page {
	switch s {
	case config.PageResearch:
		return pageResearch
	case config.PageReports:
		return pageReports
	default:
		return pageCompanies
	}
}

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeMenu
	modeHelp
)

// App owns both query states. Every input that changes a query calls
// recompute, which rebuilds the derived views from the immutable dataset.
type App struct {
	data    *catalog.Dataset
	engine  *viewmodel.Engine
	printer *message.Printer
	reports []config.Report
	log     *zap.Logger

	page  page
	mode  mode
	focus focusPane

	width  int
	height int

	companyQuery viewmodel.CompanyQuery
	articleQuery viewmodel.ArticleQuery
	companyView  viewmodel.CompanyState
	articleView  viewmodel.ArticleState

	defaultCompanySort viewmodel.CompanySort
	defaultArticleSort viewmodel.ArticleSort

	searchInput     textinput.Model
	companyControls controls
	articleControls controls

	cursor        [len(pageTitles)]int
	previewScroll int
	err           error
	notice        string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg  *config.Config
	Data *catalog.Dataset
	// Page overrides the configured start page when set.
	Page string
	Log  *zap.Logger
}

func NewApp(opts RunOpts) *App {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{}
	}
	data := opts.Data
	if data == nil {
		data = &catalog.Dataset{}
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	start := cfg.Page()
	if opts.Page != "" {
		start = opts.Page
	}

	ti := textinput.New()
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.Width = searchWidth - 4

	tag := cfg.Language()
	a := &App{
		data:               data,
		engine:             viewmodel.New(tag),
		printer:            message.NewPrinter(tag),
		reports:            cfg.Reports,
		log:                log,
		page:               parsePage(start),
		companyQuery:       viewmodel.DefaultCompanyQuery(),
		articleQuery:       viewmodel.DefaultArticleQuery(),
		defaultCompanySort: cfg.CompanySort(),
		defaultArticleSort: cfg.ArticleSort(),
		searchInput:        ti,
	}
	a.companyQuery.Sort = a.defaultCompanySort
	a.articleQuery.Sort = a.defaultArticleSort

	a.companyControls = newControls("All Industries", companySortItems(), string(a.defaultCompanySort))
	a.articleControls = newControls("All Categories", articleSortItems(), string(a.defaultArticleSort))

	a.companyControls.filter.OnSelect = func(v string) {
		a.companyQuery.Industry = v
		a.queryChanged()
	}
	a.companyControls.sort.OnSelect = func(v string) {
		a.companyQuery.Sort = viewmodel.ParseCompanySort(v)
		a.queryChanged()
	}
	a.articleControls.filter.OnSelect = func(v string) {
		a.articleQuery.Category = v
		a.queryChanged()
	}
	a.articleControls.sort.OnSelect = func(v string) {
		a.articleQuery.Sort = viewmodel.ParseArticleSort(v)
		a.queryChanged()
	}

	a.recompute()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// recompute derives both views from scratch.
func (a *App) recompute() {
	a.companyView = a.engine.CompanyView(a.data.Companies, a.companyQuery)
	a.articleView = a.engine.ArticleView(a.data.Articles, a.articleQuery)
	a.companyControls.filter.SetItems(industryItems(a.companyView))
	a.articleControls.filter.SetItems(categoryItems(a.articleView))

	for p := range a.cursor {
		if n := a.listLen(page(p)); a.cursor[p] >= n {
			a.cursor[p] = max(0, n-1)
		}
	}
	a.log.Debug("view recomputed",
		zap.Int("companies", len(a.companyView.Companies)),
		zap.Int("articles", len(a.articleView.Articles)))
}

func (a *App) queryChanged() {
	a.cursor[a.page] = 0
	a.previewScroll = 0
	a.recompute()
}

func (a *App) listLen(p page) int {
	switch p {
	case pageCompanies:
		return len(a.companyView.Companies)
	case pageResearch:
		return len(a.articleView.Articles)
	default:
		return len(a.reports)
	}
}

// controls returns the menus of the current page, or nil on the reports page.
func (a *App) controls() *controls {
	switch a.page {
	case pageCompanies:
		return &a.companyControls
	case pageResearch:
		return &a.articleControls
	default:
		return nil
	}
}

func (a *App) search() string {
	if a.page == pageResearch {
		return a.articleQuery.Search
	}
	return a.companyQuery.Search
}

func (a *App) setSearch(s string) {
	switch a.page {
	case pageCompanies:
		a.companyQuery.Search = s
	case pageResearch:
		a.articleQuery.Search = s
	default:
		return
	}
	a.queryChanged()
}

// clearFilters resets the current page's query to its defaults.
func (a *App) clearFilters() {
	switch a.page {
	case pageCompanies:
		a.companyQuery = viewmodel.DefaultCompanyQuery()
		a.companyQuery.Sort = a.defaultCompanySort
		a.companyControls.reset(string(a.defaultCompanySort))
	case pageResearch:
		a.articleQuery = viewmodel.DefaultArticleQuery()
		a.articleQuery.Sort = a.defaultArticleSort
		a.articleControls.reset(string(a.defaultArticleSort))
	default:
		return
	}
	a.searchInput.SetValue("")
	a.queryChanged()
}

func (a *App) setPage(p page) {
	if ctl := a.controls(); ctl != nil {
		ctl.closeAll()
	}
	a.page = p
	a.mode = modeNormal
	a.previewScroll = 0
	a.searchInput.Blur()
	a.searchInput.SetValue(a.search())
}

func (a *App) selectedCompany() *catalog.Company {
	cs := a.companyView.Companies
	if i := a.cursor[pageCompanies]; i < len(cs) {
		return &cs[i]
	}
	return nil
}

func (a *App) selectedArticle() *catalog.Article {
	as := a.articleView.Articles
	if i := a.cursor[pageResearch]; i < len(as) {
		return &as[i]
	}
	return nil
}

// selectedURL is the link "o" opens on the current page.
func (a *App) selectedURL() string {
	switch a.page {
	case pageCompanies:
		if c := a.selectedCompany(); c != nil {
			return c.WebsiteURL()
		}
	case pageResearch:
		if ar := a.selectedArticle(); ar != nil {
			return ar.URL
		}
	default:
		if i := a.cursor[pageReports]; i < len(a.reports) {
			return a.reports[i].URL
		}
	}
	return ""
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return openedMsg{url: url}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky messages on any keypress
		a.err = nil
		a.notice = ""
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case openErrMsg:
		a.log.Warn("open failed", zap.Error(msg.err))
		a.err = msg.err
		return a, nil

	case openedMsg:
		a.notice = "Opened " + msg.url
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeMenu:
		return a.handleMenuKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	ctl := a.controls()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "1":
		a.setPage(pageCompanies)
	case "2":
		a.setPage(pageResearch)
	case "3":
		a.setPage(pageReports)
	case "j", "down":
		if a.focus == focusPreview && a.page != pageReports {
			a.previewScroll++
		} else if a.cursor[a.page] < a.listLen(a.page)-1 {
			a.cursor[a.page]++
			a.previewScroll = 0
		}
	case "k", "up":
		if a.focus == focusPreview && a.page != pageReports {
			if a.previewScroll > 0 {
				a.previewScroll--
			}
		} else if a.cursor[a.page] > 0 {
			a.cursor[a.page]--
			a.previewScroll = 0
		}
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
	case "o", "enter":
		if url := a.selectedURL(); url != "" {
			return a, openBrowserCmd(url)
		}
	case "/":
		if ctl != nil {
			a.mode = modeSearch
			return a, a.searchInput.Focus()
		}
	case "f":
		if ctl != nil {
			a.openMenu(ctl.filter)
		}
	case "s":
		if ctl != nil {
			a.openMenu(ctl.sort)
		}
	case "c":
		a.clearFilters()
	case "?":
		a.mode = modeHelp
	}

	return a, nil
}

func (a *App) openMenu(m *dropdown.Model) {
	a.controls().closeAll()
	m.Open()
	if m.IsOpen() {
		a.mode = modeMenu
	}
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.setSearch("")
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only recompute on value changes, not cursor moves.
	if v := a.searchInput.Value(); v != a.search() {
		a.setSearch(v)
	}
	return a, cmd
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := a.controls()
	var m *dropdown.Model
	if ctl != nil {
		m = ctl.active()
	}
	if m == nil {
		a.mode = modeNormal
		return a, nil
	}

	switch msg.String() {
	case "j", "down":
		m.Next()
	case "k", "up":
		m.Prev()
	case "enter", " ":
		m.Confirm()
	case "esc", "q", "f", "s":
		m.Close()
	}
	if !m.IsOpen() {
		a.mode = modeNormal
	}
	return a, nil
}

// handleMouse routes left presses to the control row. A press outside an
// open menu closes it.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	ctl := a.controls()
	if ctl == nil || a.mode == modeHelp {
		return a, nil
	}

	hit := false
	for _, m := range ctl.menus() {
		if m.HandlePointer(msg.X, msg.Y) {
			hit = true
		}
	}

	if ctl.active() != nil {
		if a.mode == modeSearch {
			a.searchInput.Blur()
		}
		a.mode = modeMenu
		return a, nil
	}
	if a.mode == modeMenu {
		a.mode = modeNormal
	}
	if !hit && msg.Y == controlsRow && msg.X < searchWidth {
		a.mode = modeSearch
		return a, a.searchInput.Focus()
	}
	return a, nil
}

func (a *App) searchView() string {
	if a.mode == modeSearch {
		return a.searchInput.View()
	}
	if s := a.search(); s != "" {
		return searchPromptStyle.Render("/ ") + s
	}
	placeholder := "Search companies..."
	if a.page == pageResearch {
		placeholder = "Search research..."
	}
	return searchIdleStyle.Render("/ " + placeholder)
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  mushrooms")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	var top []string
	top = append(top, renderHeader(a.page, a.width))

	switch a.page {
	case pageCompanies:
		top = append(top,
			renderCompanyStats(a.printer, a.companyView.Stats),
			a.companyControls.render(a.searchView()),
			showingLine(a.printer, len(a.companyView.Companies), a.companyView.Total, "companies"))
	case pageResearch:
		top = append(top,
			renderArticleStats(a.printer, a.articleView.Total, a.articleView.Categories.Len()),
			a.articleControls.render(a.searchView()),
			showingLine(a.printer, len(a.articleView.Articles), a.articleView.Total, "articles"))
	}

	header := strings.Join(top, "\n")
	status := renderStatusBar(a.statusLeft(), a.statusHints(), a.width)

	remaining := a.height - lipgloss.Height(header) - 1
	if a.page == pageReports {
		if remaining < 3 {
			remaining = 3
		}
		body := renderReports(a.reports, a.cursor[pageReports], a.width, remaining)
		return lipgloss.JoinVertical(lipgloss.Left, header, scrollFit(body, remaining, 0), status)
	}

	contentHeight := remaining - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap
	innerListW := listWidth - 4
	innerPreviewW := previewWidth - 4

	var listContent, previewContent string
	if a.page == pageCompanies {
		listContent = renderList(companyItems(a.companyView.Companies), a.cursor[pageCompanies],
			contentHeight, innerListW, "No companies found")
		previewContent = renderCompanyPreview(a.selectedCompany(), innerPreviewW, contentHeight, a.previewScroll)
	} else {
		listContent = renderList(articleItems(a.articleView.Articles), a.cursor[pageResearch],
			contentHeight, innerListW, "No articles found")
		previewContent = renderArticlePreview(a.selectedArticle(), innerPreviewW, contentHeight, a.previewScroll)
	}

	listStyle, previewStyle := listPaneActiveStyle, previewPaneStyle
	if a.focus == focusPreview {
		listStyle, previewStyle = listPaneStyle, previewPaneActiveStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("mushrooms")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Pages") + "\n" +
		"  1 2 3         Companies, Research, Industry Reports\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the list\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Filtering") + "\n" +
		"  /             Search (esc clears)\n" +
		"  f             Industry or category menu\n" +
		"  s             Sort menu\n" +
		"  c             Clear filters\n" +
		"  click         Open a menu; click elsewhere to close it\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open website, article or report\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
