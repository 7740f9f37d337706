package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/config"
	"github.com/filmotheque/filmotheque/internal/render"
)

// newBrowseCmd returns the "browse" subcommand for the interactive session.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: "Browse the movie catalog: best-movie banner, category grids,\n" +
			"genre selection and per-movie details.\n" +
			"Keys: arrows move, enter opens details, v expands a category,\n" +
			"g picks a genre, q quits.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

// runBrowse initializes services and starts the Bubble Tea browse TUI.
func runBrowse() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	client := initCatalog(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newBrowseModel(ctx, client, cfg, logger), tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browse: %w", err)
	}
	return nil
}

// Messages carrying fetch results back into the event loop.
type (
	genresMsg struct {
		names []string
	}
	bannerMsg struct {
		detail *catalog.MovieDetail
		err    error
	}
	categoryMsg struct {
		index  int
		reqID  int
		movies []catalog.Movie
		err    error
	}
	detailMsg struct {
		detail *catalog.MovieDetail
		err    error
	}
	posterMsg struct {
		movieID int
		ok      bool
	}
)

// category is the runtime state of one grid.
type category struct {
	cfg   config.CategoryConfig
	title string
	genre string

	movies   []catalog.Movie
	reqID    int // latest issued request id; replies with an older id are stale
	loading  bool
	loaded   bool
	failed   bool
	expanded bool
}

// query builds the titles query for the category's current state.
func (c *category) query() catalog.Query {
	if c.cfg.Kind == config.KindDropdown {
		return catalog.ByGenre(c.genre)
	}
	return catalog.Query{SortBy: c.cfg.SortBy, Genre: c.cfg.Genre}
}

// browseModel is the Bubble Tea model for the interactive session. It owns
// all cross-category state: the fetched genre list, the banner, each
// category's grid and accordion flag, poster states, and the cursor.
type browseModel struct {
	ctx    context.Context
	client *catalog.Client
	cfg    *config.Config
	logger *slog.Logger

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	genres       []string
	genresLoaded bool

	banner       *catalog.MovieDetail
	bannerFailed bool

	cats    []category
	booting bool // categories are loaded one after another at startup

	// Poster probe bookkeeping. poster only ever transitions away from
	// PosterUnknown once; probed guards against re-probing a failed URL.
	poster map[int]render.PosterState
	probed map[int]bool

	catIdx  int
	cardIdx int

	picking bool // genre selector open for the current category
	pickIdx int

	modal *catalog.MovieDetail

	width  int
	height int
}

// newBrowseModel creates the model with categories from configuration.
func newBrowseModel(ctx context.Context, client *catalog.Client, cfg *config.Config, logger *slog.Logger) browseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo

	cats := make([]category, len(cfg.Browse.Categories))
	for i, cc := range cfg.Browse.Categories {
		cats[i] = category{cfg: cc, title: cc.Title}
	}

	return browseModel{
		ctx:     ctx,
		client:  client,
		cfg:     cfg,
		logger:  logger,
		spinner: s,
		cats:    cats,
		booting: true,
		poster:  make(map[int]render.PosterState),
		probed:  make(map[int]bool),
	}
}

// Init starts the spinner and the genre fetch that anchors the bootstrap.
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadGenres())
}

// Update handles incoming messages and user input.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case genresMsg:
		return m.handleGenres(msg)

	case bannerMsg:
		return m.handleBanner(msg)

	case categoryMsg:
		return m.handleCategory(msg)

	case detailMsg:
		if msg.err != nil {
			m.logger.Warn("detail fetch failed", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.modal = msg.detail
		return m, m.probePoster(msg.detail.ID, msg.detail.ImageURL)

	case posterMsg:
		// Exactly-once substitution: only an unknown poster may change state.
		if m.poster[msg.movieID] == render.PosterUnknown {
			if msg.ok {
				m.poster[msg.movieID] = render.PosterOK
			} else {
				m.poster[msg.movieID] = render.PosterFailed
			}
			m.refreshViewport()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.anyLoading() {
			m.refreshViewport()
		}
		return m, cmd
	}

	return m, nil
}

// handleResize adjusts the category viewport to the terminal size.
func (m *browseModel) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	if !m.ready {
		m.viewport = viewport.New(m.width, 3)
		m.ready = true
	}
	m.resizeViewport()
}

// resizeViewport recomputes the category area height; the header grows
// once the banner is loaded.
func (m *browseModel) resizeViewport() {
	if !m.ready {
		return
	}
	vpHeight := m.height - m.headerHeight()
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight
}

// handleGenres resolves dropdown defaults and starts the banner fetch.
func (m browseModel) handleGenres(msg genresMsg) (tea.Model, tea.Cmd) {
	m.genres = msg.names
	m.genresLoaded = true

	for i := range m.cats {
		cat := &m.cats[i]
		if cat.cfg.Kind != config.KindDropdown {
			continue
		}
		genre, ok := defaultGenre(m.genres, cat.cfg.DefaultGenreIndex)
		if !ok {
			cat.failed = true
			cat.loaded = true
			cat.title = "Genre"
			m.logger.Warn("no genres available for dropdown category", slog.String("id", cat.cfg.ID))
			continue
		}
		cat.genre = genre
		cat.title = genre
	}

	m.refreshViewport()
	return m, m.loadBanner()
}

// handleBanner records the banner and starts the sequential category loads.
func (m browseModel) handleBanner(msg bannerMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.err != nil {
		// Placeholder content stays in place; the rest of the page goes on.
		m.bannerFailed = true
		m.logger.Warn("best movie unavailable", slog.String("error", msg.err.Error()))
	} else {
		m.banner = msg.detail
		if cmd := m.probePoster(msg.detail.ID, msg.detail.ImageURL); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(m.cats) > 0 {
		cmds = append(cmds, m.loadCategory(0))
	} else {
		m.booting = false
	}
	m.resizeViewport()
	m.refreshViewport()
	return m, tea.Batch(cmds...)
}

// handleCategory applies one grid's fetch result and, during bootstrap,
// chains the next category.
func (m browseModel) handleCategory(msg categoryMsg) (tea.Model, tea.Cmd) {
	cat := &m.cats[msg.index]
	if msg.reqID != cat.reqID {
		m.logger.Debug("dropping stale category response",
			slog.String("id", cat.cfg.ID),
			slog.Int("got", msg.reqID),
			slog.Int("want", cat.reqID),
		)
		return m, nil
	}

	cat.loading = false
	cat.loaded = true

	var cmds []tea.Cmd
	switch {
	case msg.err != nil:
		cat.failed = true
		cat.movies = nil
		m.logger.Warn("category load failed",
			slog.String("id", cat.cfg.ID),
			slog.String("error", msg.err.Error()),
		)
	case len(msg.movies) == 0:
		cat.movies = nil
		m.logger.Info("category came back empty", slog.String("id", cat.cfg.ID))
	default:
		cat.failed = false
		cat.movies = msg.movies
		for _, mv := range msg.movies {
			if cmd := m.probePoster(mv.ID, mv.ImageURL); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if m.booting {
		if next := msg.index + 1; next < len(m.cats) {
			cmds = append(cmds, m.loadCategory(next))
		} else {
			m.booting = false
		}
	}

	m.refreshViewport()
	return m, tea.Batch(cmds...)
}

// handleKey dispatches key events depending on the open surface.
func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		switch key {
		case "esc", "enter", "q":
			m.modal = nil
		}
		return m, nil
	}

	if m.picking {
		return m.handlePickerKey(key)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.catIdx > 0 {
			m.catIdx--
			m.cardIdx = 0
		}
	case "down", "j":
		if m.catIdx < len(m.cats)-1 {
			m.catIdx++
			m.cardIdx = 0
		}
	case "left", "h":
		if m.cardIdx > 0 {
			m.cardIdx--
		}
	case "right", "l":
		if n := m.visibleCards(m.catIdx); m.cardIdx < n-1 {
			m.cardIdx++
		}
	case "v", " ":
		return m.toggleAccordion()
	case "g":
		return m.openPicker()
	case "enter":
		return m.openDetails()
	}

	m.refreshViewport()
	return m, nil
}

// toggleAccordion flips the current category between collapsed and
// expanded, relabeling its control.
func (m browseModel) toggleAccordion() (tea.Model, tea.Cmd) {
	if len(m.cats) == 0 {
		return m, nil
	}
	cat := &m.cats[m.catIdx]
	if !cat.loaded || cat.failed || len(cat.movies) == 0 {
		return m, nil
	}
	cat.expanded = !cat.expanded
	if n := m.visibleCards(m.catIdx); m.cardIdx >= n {
		m.cardIdx = n - 1
	}
	m.refreshViewport()
	return m, nil
}

// openPicker opens the genre selector for a dropdown category.
func (m browseModel) openPicker() (tea.Model, tea.Cmd) {
	if len(m.cats) == 0 || !m.genresLoaded || len(m.genres) == 0 {
		return m, nil
	}
	cat := &m.cats[m.catIdx]
	if cat.cfg.Kind != config.KindDropdown {
		return m, nil
	}
	m.picking = true
	m.pickIdx = 0
	for i, g := range m.genres {
		if g == cat.genre {
			m.pickIdx = i
			break
		}
	}
	return m, nil
}

// handlePickerKey drives the genre selector overlay.
func (m browseModel) handlePickerKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q":
		m.picking = false
	case "up", "k":
		if m.pickIdx > 0 {
			m.pickIdx--
		}
	case "down", "j":
		if m.pickIdx < len(m.genres)-1 {
			m.pickIdx++
		}
	case "enter":
		m.picking = false
		cat := &m.cats[m.catIdx]
		selected := m.genres[m.pickIdx]
		if selected == cat.genre {
			return m, nil
		}
		cat.genre = selected
		cat.title = selected
		// The item set changes, so the accordion closes.
		cat.expanded = false
		m.cardIdx = 0
		m.refreshViewport()
		return m, m.loadCategory(m.catIdx)
	}
	return m, nil
}

// openDetails fetches the selected card's full record.
func (m browseModel) openDetails() (tea.Model, tea.Cmd) {
	if len(m.cats) == 0 {
		return m, nil
	}
	cat := &m.cats[m.catIdx]
	if m.cardIdx >= len(cat.movies) {
		return m, nil
	}
	id := cat.movies[m.cardIdx].ID
	return m, func() tea.Msg {
		detail, err := m.client.Title(m.ctx, id)
		return detailMsg{detail: detail, err: err}
	}
}

// Commands.

func (m browseModel) loadGenres() tea.Cmd {
	return func() tea.Msg {
		return genresMsg{names: m.client.GenreNames(m.ctx)}
	}
}

func (m browseModel) loadBanner() tea.Cmd {
	return func() tea.Msg {
		detail, err := m.client.BestMovie(m.ctx)
		return bannerMsg{detail: detail, err: err}
	}
}

// loadCategory issues the category's grid fetch under a fresh request id.
func (m *browseModel) loadCategory(index int) tea.Cmd {
	cat := &m.cats[index]
	cat.loading = true
	cat.reqID++
	reqID := cat.reqID
	count := m.cfg.Browse.CardsPerCategory
	q := cat.query()
	return func() tea.Msg {
		movies, err := m.client.Movies(m.ctx, count, q)
		return categoryMsg{index: index, reqID: reqID, movies: movies, err: err}
	}
}

// probePoster checks a poster URL once. Records without a URL go straight
// to the failed state so the placeholder is used without a network attempt.
func (m *browseModel) probePoster(movieID int, imageURL string) tea.Cmd {
	if m.probed[movieID] {
		return nil
	}
	m.probed[movieID] = true
	if imageURL == "" {
		m.poster[movieID] = render.PosterFailed
		return nil
	}
	return func() tea.Msg {
		err := m.client.ProbePoster(m.ctx, imageURL)
		return posterMsg{movieID: movieID, ok: err == nil}
	}
}

// Geometry helpers.

func (m browseModel) cardsPerRow() int {
	outer := render.SizeGrid.Width + 3 // borders plus gap
	if m.width <= outer {
		return 1
	}
	n := m.width / outer
	if n < 1 {
		n = 1
	}
	return n
}

// visibleCards returns how many cards of a category are currently shown:
// one row when collapsed, the whole grid when expanded.
func (m browseModel) visibleCards(index int) int {
	cat := &m.cats[index]
	n := len(cat.movies)
	if !cat.expanded && n > m.cardsPerRow() {
		return m.cardsPerRow()
	}
	return n
}

func (m browseModel) anyLoading() bool {
	if !m.genresLoaded || (m.banner == nil && !m.bannerFailed) {
		return true
	}
	for i := range m.cats {
		if m.cats[i].loading {
			return true
		}
	}
	return false
}

// defaultGenre picks the configured default from the fetched list, falling
// back to the 1st or 2nd genre when the list is shorter than the index.
func defaultGenre(genres []string, index int) (string, bool) {
	if len(genres) == 0 {
		return "", false
	}
	if index < len(genres) {
		return genres[index], true
	}
	if fallback := index % 2; fallback < len(genres) {
		return genres[fallback], true
	}
	return genres[0], true
}

// View renders the full page: banner on top, category grids below, with
// modal and genre picker as exclusive overlays.
func (m browseModel) View() string {
	if !m.ready {
		return "Initialisation..."
	}

	if m.modal != nil {
		body := render.Modal(m.modal, m.poster[m.modal.ID])
		hint := styleDim.Render("esc: fermer")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, body, hint))
	}

	if m.picking {
		return m.pickerView()
	}

	header := m.headerView()
	return header + "\n" + m.viewport.View()
}

// headerView renders the title line and the best-movie banner.
func (m browseModel) headerView() string {
	title := styleHeading.Render("Filmothèque")

	var banner string
	switch {
	case m.banner != nil:
		banner = render.Banner(m.banner, m.poster[m.banner.ID])
	case m.bannerFailed:
		banner = styleDim.Render("Meilleur film indisponible")
	default:
		banner = m.spinner.View() + styleDim.Render(" Chargement du meilleur film...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, banner)
}

func (m browseModel) headerHeight() int {
	return lipgloss.Height(m.headerView()) + 1
}

// pickerView renders the genre selection overlay.
func (m browseModel) pickerView() string {
	var sb strings.Builder
	sb.WriteString(styleHeading.Render("Choisir un genre"))
	sb.WriteString("\n")
	for i, g := range m.genres {
		cursor := "  "
		line := g
		if i == m.pickIdx {
			cursor = styleAccent.Render("> ")
			line = styleAccent.Render(g)
		}
		sb.WriteString(cursor + line + "\n")
	}
	sb.WriteString("\n" + styleDim.Render("entrée: choisir · esc: annuler"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

// refreshViewport re-renders the category area and keeps the selected
// category in view.
func (m *browseModel) refreshViewport() {
	if !m.ready {
		return
	}

	blocks := make([]string, len(m.cats))
	offset := 0
	selOffset := 0
	for i := range m.cats {
		blocks[i] = m.categoryView(i)
		if i < m.catIdx {
			offset += lipgloss.Height(blocks[i]) + 1
		}
		if i == m.catIdx {
			selOffset = offset
		}
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	if selOffset < m.viewport.YOffset || selOffset > m.viewport.YOffset+m.viewport.Height-3 {
		m.viewport.SetYOffset(selOffset)
	}
}

// categoryView renders one category: header line plus its card grid.
func (m browseModel) categoryView(index int) string {
	cat := &m.cats[index]

	name := cat.title
	if name == "" {
		name = cat.cfg.ID
	}
	header := styleAccent.Render(name)
	if index == m.catIdx {
		header = styleAccent.Render("▸ " + name)
	}

	switch {
	case cat.loading:
		header += "  " + m.spinner.View()
	case cat.failed:
		header += "  " + styleError.Render("indisponible")
	case cat.loaded && len(cat.movies) == 0:
		header += "  " + styleDim.Render("aucun film")
	case cat.loaded && len(cat.movies) > m.cardsPerRow():
		label := m.cfg.Browse.ExpandLabel
		if cat.expanded {
			label = m.cfg.Browse.CollapseLabel
		}
		header += "  " + styleDim.Render("[v] "+label)
	}
	if cat.cfg.Kind == config.KindDropdown && index == m.catIdx {
		header += "  " + styleDim.Render("[g] genre")
	}

	visible := m.visibleCards(index)
	if visible == 0 {
		return header
	}

	perRow := m.cardsPerRow()
	var rows []string
	for start := 0; start < visible; start += perRow {
		end := start + perRow
		if end > visible {
			end = visible
		}
		cards := make([]string, 0, end-start)
		for ci := start; ci < end; ci++ {
			mv := cat.movies[ci]
			selected := index == m.catIdx && ci == m.cardIdx
			cards = append(cards, render.Card(mv, m.poster[mv.ID], selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}
