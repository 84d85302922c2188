package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PortellaAlly/bestprice/internal/browser"
	"github.com/PortellaAlly/bestprice/internal/catalog"
)

type mode int

const (
	modeSearch mode = iota
	modeResults
	modeFilter
	modeHistory
	modeHelp
)

// PriceAPI is what the App needs from the remote service client.
type PriceAPI interface {
	Search(ctx context.Context, query string) (*catalog.SearchResponse, error)
	History(ctx context.Context, productID int) (*catalog.History, error)
}

const requestTimeout = 30 * time.Second

type App struct {
	client PriceAPI
	log    *slog.Logger

	width  int
	height int

	mode mode

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	storeBar    storeBar

	// Result state
	products []catalog.Product
	view     catalog.View
	cursor   int

	// Search state. searchSeq grows with every submitted search; responses
	// carrying an older seq lost the race and are dropped.
	searching bool
	searched  bool
	searchSeq int
	notice    string
	noticeErr bool

	// History state
	selected       *catalog.Product
	points         []catalog.PricePoint
	historyLoading bool

	initialQuery string
	currentDate  string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Client       PriceAPI
	Log          *slog.Logger
	InitialQuery string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Buscar produtos..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 120
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		client:       opts.Client,
		log:          opts.Log,
		mode:         modeSearch,
		searchInput:  ti,
		spinner:      sp,
		storeBar:     newStoreBar(nil),
		initialQuery: opts.InitialQuery,
		currentDate:  time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.initialQuery != "" {
		a.searchInput.SetValue(a.initialQuery)
		if cmd := a.submitSearch(a.initialQuery); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// submitSearch starts a search for the trimmed query. Blank input and
// re-entrant submissions are no-ops.
func (a *App) submitSearch(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	if query == "" || a.searching {
		return nil
	}

	a.searching = true
	a.searched = true
	a.notice = ""
	a.noticeErr = false
	a.searchInput.Blur()
	a.searchSeq++
	seq := a.searchSeq

	client := a.client
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := client.Search(ctx, query)
		if err != nil {
			return searchErrMsg{seq: seq, err: err}
		}
		return searchResultMsg{seq: seq, resp: resp}
	})
}

func (a *App) fetchHistory(productID int) tea.Cmd {
	if a.historyLoading {
		return nil
	}
	a.historyLoading = true

	client := a.client
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		hist, err := client.History(ctx, productID)
		if err != nil {
			return historyErrMsg{err: err}
		}
		return historyResultMsg{hist: hist}
	})
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

// displayed derives the visible list from the current view-state. Pure;
// recomputed on every render and key press that needs it.
func (a *App) displayed() []catalog.Product {
	return a.view.Apply(a.products)
}

func (a *App) clampCursor(items []catalog.Product) {
	if a.cursor >= len(items) {
		a.cursor = max(0, len(items)-1)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchResultMsg:
		if msg.seq != a.searchSeq {
			// A newer search was issued while this one was in flight.
			return a, nil
		}
		a.searching = false
		a.mode = modeResults
		if msg.resp == nil || len(msg.resp.Products) == 0 {
			a.products = nil
			a.storeBar = newStoreBar(nil)
			a.notice = "Nenhum produto encontrado. Tente outra busca."
			a.noticeErr = false
			return a, nil
		}
		a.products = msg.resp.Products
		a.storeBar = newStoreBar(catalog.Stores(a.products))
		// New result set: back to "all stores" so a stale filter can't
		// hide everything.
		a.view.Store = ""
		a.cursor = 0
		return a, nil

	case searchErrMsg:
		if msg.seq != a.searchSeq {
			return a, nil
		}
		a.searching = false
		a.mode = modeResults
		a.products = nil
		a.storeBar = newStoreBar(nil)
		a.notice = "Erro ao buscar produtos. Verifique a conexão e tente novamente."
		a.noticeErr = true
		return a, nil

	case historyResultMsg:
		a.historyLoading = false
		p := msg.hist.Product
		a.selected = &p
		a.points = msg.hist.Points
		a.mode = modeHistory
		return a, nil

	case historyErrMsg:
		a.historyLoading = false
		a.notice = "Erro ao carregar o histórico de preços."
		a.noticeErr = true
		return a, nil

	case openErrMsg:
		a.log.Error("failed to open offer in browser", "error", msg.err)
		a.notice = msg.err.Error()
		a.noticeErr = true
		return a, nil

	case spinner.TickMsg:
		if a.searching || a.historyLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
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
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHistory:
		return a.handleHistoryKey(msg)
	case modeHelp:
		if s := msg.String(); s == "?" || s == "esc" || s == "q" {
			a.mode = modeResults
			if !a.searched {
				a.mode = modeSearch
			}
		}
		return a, nil
	}

	// Results mode
	a.notice = ""
	items := a.displayed()
	a.clampCursor(items)

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(items)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "s":
		a.view.Sort = (a.view.Sort + 1) % 3
		a.cursor = 0
		return a, nil
	case "f":
		if len(a.storeBar.stores) > 0 {
			a.mode = modeFilter
			a.storeBar.filterMode = true
			a.storeBar.filterCursor = a.storeBar.selected
		}
		return a, nil
	case "enter", "h":
		if a.cursor < len(items) && items[a.cursor].ID > 0 {
			return a, a.fetchHistory(items[a.cursor].ID)
		}
		return a, nil
	case "o":
		if a.cursor < len(items) {
			return a, openBrowserCmd(items[a.cursor].URL)
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if a.searched && !a.searching {
			a.mode = modeResults
			a.searchInput.Blur()
		}
		return a, nil
	case "enter":
		return a, a.submitSearch(a.searchInput.Value())
	}

	// Input is disabled while a search is outstanding.
	if a.searching {
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeResults
		a.storeBar.filterMode = false
		return a, nil
	case "left", "h":
		if a.storeBar.filterCursor > 0 {
			a.storeBar.filterCursor--
		}
		return a, nil
	case "right", "l":
		if a.storeBar.filterCursor < len(a.storeBar.stores) {
			a.storeBar.filterCursor++
		}
		return a, nil
	case " ", "enter":
		a.storeBar.selectCurrent()
		a.view.Store = a.storeBar.active()
		a.cursor = 0
		a.mode = modeResults
		a.storeBar.filterMode = false
		return a, nil
	}
	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		// Drop the stale chart so a reopen can't flash the previous
		// product's history.
		a.selected = nil
		a.points = nil
		a.mode = modeResults
		return a, nil
	case "o":
		if a.selected != nil {
			return a, openBrowserCmd(a.selected.URL)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  bestprice")
	}

	headerLeft := headerStyle.Render("bestprice")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	if a.mode == modeHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, a.renderHelp())
	}

	if a.mode == modeHistory && a.selected != nil {
		body := renderHistory(*a.selected, a.points, a.width, a.height-2)
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}

	searchBar := " " + a.searchInput.View()

	var body string
	switch {
	case a.searching:
		body = "\n " + a.spinner.View() + " " +
			noticeInfoStyle.Render("Buscando o melhor preço para você!")
	case a.historyLoading:
		body = "\n " + a.spinner.View() + " " +
			noticeInfoStyle.Render("Carregando histórico de preços...")
	case a.notice != "":
		if a.noticeErr {
			body = "\n" + noticeErrStyle.Render(a.notice)
		} else {
			body = "\n" + noticeInfoStyle.Render(a.notice)
		}
	case !a.searched:
		body = "\n" + noticeInfoStyle.Render("Digite o nome de um produto e pressione enter para comparar preços.")
	case len(a.products) == 0:
		body = "\n" + noticeInfoStyle.Render("Nenhum produto encontrado. Tente outra busca.")
	default:
		items := a.displayed()
		a.clampCursor(items)

		listHeight := a.height - 8 // header, search, header lines, bars
		if listHeight < cardHeight {
			listHeight = cardHeight
		}

		body = lipgloss.JoinVertical(lipgloss.Left,
			renderResultsHeader(len(items), a.products, a.width),
			a.storeBar.render(a.width, a.view.Sort),
			renderList(items, a.products, a.cursor, listHeight, a.width),
		)
	}

	status := renderStatusBar(
		len(a.displayed()),
		a.storeBar.activeLabel(),
		a.view.Sort.String(),
		a.width,
		a.searching,
	)

	main := lipgloss.JoinVertical(lipgloss.Left, header, searchBar, body)

	lines := strings.Split(main, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, status)
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("bestprice")
	dim := helpDimStyle

	help := title + dim.Render(" — Atalhos") + "\n\n" +
		dim.Render("Busca") + "\n" +
		"  /             Buscar produtos\n" +
		"  enter         Enviar busca\n\n" +
		dim.Render("Resultados") + "\n" +
		"  j/k, ↑/↓     Navegar entre os produtos\n" +
		"  s             Alternar ordenação (menor preço, maior preço, nome)\n" +
		"  f             Filtrar por loja\n" +
		"  enter, h      Ver histórico de preços\n" +
		"  o             Abrir a oferta no navegador\n\n" +
		dim.Render("Geral") + "\n" +
		"  ?             Mostrar/esconder esta ajuda\n" +
		"  q, ctrl+c    Sair"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
