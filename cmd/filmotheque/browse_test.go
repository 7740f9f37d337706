package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/config"
	"github.com/filmotheque/filmotheque/internal/render"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestBrowseModel builds the model on the default configuration with a
// client that is never actually called: message handling is exercised by
// feeding messages directly.
func newTestBrowseModel() browseModel {
	logger := testLogger()
	cfg := config.Default()
	client := catalog.NewForTest("http://127.0.0.1:0", logger)
	return newBrowseModel(context.Background(), client, cfg, logger)
}

func sized(m browseModel) browseModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(browseModel)
}

func testMovies(n int) []catalog.Movie {
	movies := make([]catalog.Movie, n)
	for i := range movies {
		movies[i] = catalog.Movie{
			ID:       i + 1,
			Title:    "Film",
			ImageURL: "http://img.local/poster.jpg",
		}
	}
	return movies
}

func TestBrowseModel_Init(t *testing.T) {
	m := newTestBrowseModel()

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should return a command (spinner tick + genre fetch)")
	}
	if !m.booting {
		t.Error("model should start in booting state")
	}
	if m.ready {
		t.Error("model should not be ready before WindowSizeMsg")
	}
	if len(m.cats) != len(config.Default().Browse.Categories) {
		t.Errorf("expected one category per config entry, got %d", len(m.cats))
	}
}

func TestBrowseModel_WindowSize(t *testing.T) {
	m := sized(newTestBrowseModel())

	if !m.ready {
		t.Error("should be ready after WindowSizeMsg")
	}
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestBrowseModel_GenresResolveDropdownDefaults(t *testing.T) {
	m := sized(newTestBrowseModel())

	updated, cmd := m.Update(genresMsg{names: []string{"Action", "Comedy", "Drama", "Mystery"}})
	bm := updated.(browseModel)

	if cmd == nil {
		t.Error("genres should chain into the banner fetch")
	}
	if !bm.genresLoaded {
		t.Error("genres should be marked loaded")
	}
	for i := range bm.cats {
		cat := &bm.cats[i]
		if cat.cfg.Kind != config.KindDropdown {
			continue
		}
		want := []string{"Action", "Comedy", "Drama", "Mystery"}[cat.cfg.DefaultGenreIndex]
		if cat.genre != want {
			t.Errorf("category %s genre = %q, want %q", cat.cfg.ID, cat.genre, want)
		}
		if cat.title != want {
			t.Errorf("category %s title = %q, want %q", cat.cfg.ID, cat.title, want)
		}
	}
}

func TestBrowseModel_GenresEmptyFailsDropdowns(t *testing.T) {
	m := sized(newTestBrowseModel())

	updated, _ := m.Update(genresMsg{names: nil})
	bm := updated.(browseModel)

	for i := range bm.cats {
		cat := &bm.cats[i]
		if cat.cfg.Kind != config.KindDropdown {
			continue
		}
		if !cat.failed {
			t.Errorf("dropdown category %s should fail without genres", cat.cfg.ID)
		}
	}
}

func TestBrowseModel_BannerChainsFirstCategory(t *testing.T) {
	m := sized(newTestBrowseModel())

	detail := &catalog.MovieDetail{ID: 9, Title: "Heat", ImageURL: "http://img.local/9.jpg"}
	updated, cmd := m.Update(bannerMsg{detail: detail})
	bm := updated.(browseModel)

	if bm.banner == nil || bm.banner.Title != "Heat" {
		t.Error("banner should be recorded")
	}
	if cmd == nil {
		t.Error("banner should chain into the first category load")
	}
	if !bm.cats[0].loading {
		t.Error("first category should be loading after the banner")
	}
	if bm.cats[0].reqID != 1 {
		t.Errorf("first category reqID = %d, want 1", bm.cats[0].reqID)
	}
}

func TestBrowseModel_BannerFailureDegrades(t *testing.T) {
	m := sized(newTestBrowseModel())

	updated, cmd := m.Update(bannerMsg{err: errors.New("backend down")})
	bm := updated.(browseModel)

	if bm.banner != nil {
		t.Error("banner should stay nil on failure")
	}
	if !bm.bannerFailed {
		t.Error("banner failure should be recorded")
	}
	if cmd == nil {
		t.Error("category loads should still start after a banner failure")
	}
}

func TestBrowseModel_BootstrapChainsCategories(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].reqID = 1

	updated, cmd := m.Update(categoryMsg{index: 0, reqID: 1, movies: testMovies(6)})
	bm := updated.(browseModel)

	if !bm.cats[0].loaded {
		t.Error("category 0 should be loaded")
	}
	if cmd == nil {
		t.Error("bootstrap should chain into category 1")
	}
	if !bm.cats[1].loading {
		t.Error("category 1 should be loading")
	}
	if !bm.booting {
		t.Error("still booting while categories remain")
	}
}

func TestBrowseModel_BootstrapEndsAfterLastCategory(t *testing.T) {
	m := sized(newTestBrowseModel())
	last := len(m.cats) - 1
	m.cats[last].reqID = 1

	updated, _ := m.Update(categoryMsg{index: last, reqID: 1, movies: testMovies(3)})
	bm := updated.(browseModel)

	if bm.booting {
		t.Error("booting should end after the last category")
	}
}

func TestBrowseModel_StaleCategoryResponseDropped(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].reqID = 2 // a newer request is in flight
	m.cats[0].loading = true

	updated, _ := m.Update(categoryMsg{index: 0, reqID: 1, movies: testMovies(6)})
	bm := updated.(browseModel)

	if bm.cats[0].loaded {
		t.Error("stale response must not mark the category loaded")
	}
	if len(bm.cats[0].movies) != 0 {
		t.Error("stale response must not install movies")
	}
	if !bm.cats[0].loading {
		t.Error("category should keep waiting for the current request")
	}
}

func TestBrowseModel_CategoryFailureKeepsPage(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].reqID = 1

	updated, _ := m.Update(categoryMsg{index: 0, reqID: 1, err: errors.New("timeout")})
	bm := updated.(browseModel)

	if !bm.cats[0].failed {
		t.Error("category should be marked failed")
	}
	if !bm.cats[0].loaded {
		t.Error("a failed category is still settled")
	}
}

func TestBrowseModel_AccordionToggle(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].loaded = true
	m.cats[0].movies = testMovies(6)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	bm := updated.(browseModel)

	if !bm.cats[0].expanded {
		t.Error("v should expand the category")
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	bm = updated.(browseModel)

	if bm.cats[0].expanded {
		t.Error("v should collapse the category again")
	}
}

func TestBrowseModel_AccordionCollapseClampsCursor(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].loaded = true
	m.cats[0].movies = testMovies(8)
	m.cats[0].expanded = true
	m.cardIdx = 7

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	bm := updated.(browseModel)

	if n := bm.visibleCards(0); bm.cardIdx >= n {
		t.Errorf("cursor %d should be clamped below %d visible cards", bm.cardIdx, n)
	}
}

func TestBrowseModel_AccordionIgnoredWhenUnsettled(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].loading = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	bm := updated.(browseModel)

	if bm.cats[0].expanded {
		t.Error("a loading category must not expand")
	}
}

func TestBrowseModel_GenrePicker(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.genres = []string{"Action", "Comedy", "Drama"}
	m.genresLoaded = true

	// Move the cursor to a dropdown category.
	drop := -1
	for i := range m.cats {
		if m.cats[i].cfg.Kind == config.KindDropdown {
			drop = i
			break
		}
	}
	if drop < 0 {
		t.Fatal("default config should have a dropdown category")
	}
	m.catIdx = drop
	m.cats[drop].genre = "Comedy"
	m.cats[drop].loaded = true
	m.cats[drop].movies = testMovies(6)
	m.cats[drop].expanded = true
	m.cats[drop].reqID = 1

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	bm := updated.(browseModel)

	if !bm.picking {
		t.Fatal("g should open the genre picker on a dropdown category")
	}
	if bm.pickIdx != 1 {
		t.Errorf("picker should start on the current genre, got index %d", bm.pickIdx)
	}

	// Pick "Drama".
	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyDown})
	bm = updated.(browseModel)
	updated, cmd := bm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	bm = updated.(browseModel)

	if bm.picking {
		t.Error("picker should close on enter")
	}
	if bm.cats[drop].genre != "Drama" {
		t.Errorf("genre = %q, want Drama", bm.cats[drop].genre)
	}
	if bm.cats[drop].expanded {
		t.Error("selecting a genre should collapse the category")
	}
	if bm.cats[drop].reqID != 2 {
		t.Errorf("a fresh request id should be issued, got %d", bm.cats[drop].reqID)
	}
	if cmd == nil {
		t.Error("selecting a genre should start a reload")
	}
}

func TestBrowseModel_GenrePickerSameGenreNoReload(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.genres = []string{"Action"}
	m.genresLoaded = true
	for i := range m.cats {
		if m.cats[i].cfg.Kind == config.KindDropdown {
			m.catIdx = i
			m.cats[i].genre = "Action"
			break
		}
	}
	m.picking = true
	m.pickIdx = 0

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	bm := updated.(browseModel)

	if bm.picking {
		t.Error("picker should close")
	}
	if cmd != nil {
		t.Error("re-selecting the current genre should not reload")
	}
}

func TestBrowseModel_PickerIgnoredOnFixedCategory(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.genres = []string{"Action"}
	m.genresLoaded = true
	m.catIdx = 0 // default config's first category is fixed

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	bm := updated.(browseModel)

	if bm.picking {
		t.Error("g must not open the picker on a fixed category")
	}
}

func TestBrowseModel_PosterTransitionsOnce(t *testing.T) {
	m := sized(newTestBrowseModel())

	updated, _ := m.Update(posterMsg{movieID: 7, ok: true})
	bm := updated.(browseModel)
	if bm.poster[7] != render.PosterOK {
		t.Fatalf("poster state = %v, want PosterOK", bm.poster[7])
	}

	// A later contradictory message must not change the state.
	updated, _ = bm.Update(posterMsg{movieID: 7, ok: false})
	bm = updated.(browseModel)
	if bm.poster[7] != render.PosterOK {
		t.Error("poster state must only transition away from unknown once")
	}
}

func TestBrowseModel_ProbeWithoutURLFailsImmediately(t *testing.T) {
	m := sized(newTestBrowseModel())

	cmd := m.probePoster(3, "")

	if cmd != nil {
		t.Error("empty poster URL must not trigger a network probe")
	}
	if m.poster[3] != render.PosterFailed {
		t.Error("empty poster URL should settle as failed")
	}
}

func TestBrowseModel_ProbeOnlyOnce(t *testing.T) {
	m := sized(newTestBrowseModel())

	if cmd := m.probePoster(3, "http://img.local/3.jpg"); cmd == nil {
		t.Fatal("first probe should issue a command")
	}
	if cmd := m.probePoster(3, "http://img.local/3.jpg"); cmd != nil {
		t.Error("a movie must not be probed twice")
	}
}

func TestBrowseModel_ModalOpensAndCloses(t *testing.T) {
	m := sized(newTestBrowseModel())

	detail := &catalog.MovieDetail{ID: 4, Title: "Heat"}
	updated, _ := m.Update(detailMsg{detail: detail})
	bm := updated.(browseModel)

	if bm.modal == nil || bm.modal.Title != "Heat" {
		t.Fatal("detail message should open the modal")
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	bm = updated.(browseModel)
	if bm.modal != nil {
		t.Error("esc should close the modal")
	}
}

func TestBrowseModel_DetailErrorKeepsPage(t *testing.T) {
	m := sized(newTestBrowseModel())

	updated, _ := m.Update(detailMsg{err: errors.New("not found")})
	bm := updated.(browseModel)

	if bm.modal != nil {
		t.Error("a failed detail fetch must not open the modal")
	}
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := sized(newTestBrowseModel())
	m.cats[0].loaded = true
	m.cats[0].movies = testMovies(4)
	m.cats[1].loaded = true
	m.cats[1].movies = testMovies(4)
	m.cardIdx = 2

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	bm := updated.(browseModel)
	if bm.catIdx != 1 {
		t.Errorf("down should move to category 1, got %d", bm.catIdx)
	}
	if bm.cardIdx != 0 {
		t.Error("changing category should reset the card cursor")
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyRight})
	bm = updated.(browseModel)
	if bm.cardIdx != 1 {
		t.Errorf("right should move to card 1, got %d", bm.cardIdx)
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyUp})
	bm = updated.(browseModel)
	if bm.catIdx != 0 {
		t.Errorf("up should move back to category 0, got %d", bm.catIdx)
	}
}

func TestBrowseModel_Quit(t *testing.T) {
	m := sized(newTestBrowseModel())

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestDefaultGenre(t *testing.T) {
	genres := []string{"Action", "Comedy", "Drama"}

	tests := []struct {
		name   string
		genres []string
		index  int
		want   string
		ok     bool
	}{
		{name: "index in range", genres: genres, index: 1, want: "Comedy", ok: true},
		{name: "even index out of range", genres: genres, index: 4, want: "Action", ok: true},
		{name: "odd index out of range", genres: genres, index: 5, want: "Comedy", ok: true},
		{name: "single genre", genres: []string{"Action"}, index: 3, want: "Action", ok: true},
		{name: "empty list", genres: nil, index: 0, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := defaultGenre(tt.genres, tt.index)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("defaultGenre = %q, want %q", got, tt.want)
			}
		})
	}
}
