package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/blogscope/pkg/browse"
	errs "github.com/matzehuels/blogscope/pkg/errors"
	"github.com/matzehuels/blogscope/pkg/loader"
	"github.com/matzehuels/blogscope/pkg/view"
)

// fakeSource serves the shared test corpus. A non-nil gate blocks
// PostDetail until it is closed.
type fakeSource struct {
	corpusErr error
	gate      chan struct{}
}

func (f *fakeSource) Corpus(ctx context.Context, withComments bool) (view.Corpus, error) {
	if f.corpusErr != nil {
		return view.Corpus{}, f.corpusErr
	}
	return view.Corpus{Posts: testPosts, Users: testUsers, Comments: testComments}, nil
}

func (f *fakeSource) PostDetail(ctx context.Context, id int) (*browse.PostDetail, error) {
	if f.gate != nil {
		<-f.gate
	}
	for _, p := range testPosts {
		if p.ID == id {
			d := &browse.PostDetail{Post: p}
			for _, u := range testUsers {
				if u.ID == p.UserID {
					d.Author = &u
				}
			}
			for _, c := range testComments {
				if c.PostID == id {
					d.Comments = append(d.Comments, c)
				}
			}
			return d, nil
		}
	}
	return nil, errs.New(errs.ErrCodeHTTPStatus, "HTTP error: 404 Not Found")
}

// loaded returns a model whose corpus has finished loading.
func loaded(t *testing.T, src browseSource) browseModel {
	t.Helper()
	m := newBrowseModel(context.Background(), src)
	next, _ := m.Update(m.Init()())
	return next.(browseModel)
}

func press(t *testing.T, m browseModel, keys ...tea.KeyMsg) (browseModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(browseModel)
	}
	return m, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseLoadsCorpus(t *testing.T) {
	m := newBrowseModel(context.Background(), &fakeSource{})
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("idle view should show loading:\n%s", m.View())
	}

	m = loaded(t, &fakeSource{})
	if got := m.corpus.Snapshot().State; got != loader.Success {
		t.Fatalf("corpus state = %v, want success", got)
	}
	out := m.View()
	for _, want := range []string{"first", "second", "Alice", "[1/2]", "id asc"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestBrowseTypingFilters(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = press(t, m, key("bo"), key("b"))
	if m.query != "bob" {
		t.Fatalf("query = %q, want bob", m.query)
	}
	_, rows, _ := m.rows()
	if len(rows) != 1 || rows[0][1] != "second" {
		t.Errorf("rows = %v, want only Bob's post", rows)
	}

	m, _ = press(t, m, key("backspace"), key("backspace"), key("backspace"))
	if m.query != "" || m.rowCount() != 2 {
		t.Errorf("query = %q rows = %d after clearing", m.query, m.rowCount())
	}

	m, _ = press(t, m, key("zzz"))
	if !strings.Contains(m.View(), "No posts match") {
		t.Errorf("empty result view:\n%s", m.View())
	}
}

func TestBrowseSortAndOrder(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = press(t, m, key("ctrl+s"))
	if got := m.sortLabel(); got != "title asc" {
		t.Errorf("sortLabel = %q, want title asc", got)
	}
	m, _ = press(t, m, key("ctrl+o"))
	_, rows, _ := m.rows()
	if rows[0][1] != "second" {
		t.Errorf("title desc first row = %v", rows[0])
	}

	// Sort state is per tab.
	m, _ = press(t, m, key("tab"))
	if got := m.sortLabel(); got != "name asc" {
		t.Errorf("users sortLabel = %q, want name asc", got)
	}
	m, _ = press(t, m, key("ctrl+s"), key("ctrl+s"), key("ctrl+s"))
	if got := m.sortLabel(); got != "name asc" {
		t.Errorf("sort key should wrap around, got %q", got)
	}
}

func TestBrowseTabs(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = press(t, m, key("tab"))
	if m.tab != tabUsers || !strings.Contains(m.View(), "alice@example.com") {
		t.Errorf("users tab:\n%s", m.View())
	}
	m, _ = press(t, m, key("tab"))
	if m.tab != tabComments || !strings.Contains(m.View(), "carol@example.com") {
		t.Errorf("comments tab:\n%s", m.View())
	}
	m, _ = press(t, m, key("tab"))
	if m.tab != tabPosts {
		t.Errorf("tab should wrap to posts, got %v", m.tab)
	}
}

func TestBrowseOpenPost(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = press(t, m, key("down"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m, cmd := press(t, m, key("enter"))
	if !m.showDetail || cmd == nil {
		t.Fatal("enter should open the post and start loading")
	}
	next, _ := m.Update(cmd())
	m = next.(browseModel)

	out := m.View()
	for _, want := range []string{"second", "Bob", "Comments (0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q:\n%s", want, out)
		}
	}

	m, _ = press(t, m, key("esc"))
	if m.showDetail {
		t.Error("esc should return to the list")
	}
	if m.detail.Snapshot().State != loader.Idle {
		t.Error("leaving the detail view should reset it")
	}
}

func TestBrowseCommentOpensItsPost(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, cmd := press(t, m, key("tab"), key("tab"), key("enter"))
	if cmd == nil {
		t.Fatal("enter on a comment should load its post")
	}
	next, _ := m.Update(cmd())
	m = next.(browseModel)
	if !strings.Contains(m.View(), "great read") {
		t.Errorf("detail view:\n%s", m.View())
	}
}

func TestBrowseEnterOnUserDoesNothing(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, cmd := press(t, m, key("tab"), key("enter"))
	if m.showDetail || cmd != nil {
		t.Error("enter on the users tab should not open a detail view")
	}
}

func TestBrowseStaleDetailIgnored(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{})}
	m := loaded(t, src)

	m, cmd := press(t, m, key("enter"))
	if !strings.Contains(m.View(), "Loading post") {
		t.Errorf("pending detail view:\n%s", m.View())
	}
	m, _ = press(t, m, key("esc"))

	close(src.gate)
	next, _ := m.Update(cmd())
	m = next.(browseModel)
	if got := m.detail.Snapshot().State; got != loader.Idle {
		t.Errorf("late result applied: state = %v, want idle", got)
	}
}

func TestBrowseCorpusFailure(t *testing.T) {
	m := loaded(t, &fakeSource{corpusErr: errs.Wrap(errs.ErrCodeNetwork, errors.New("dial tcp"), "network error: please check your internet connection")})

	out := m.View()
	if !strings.Contains(out, "check your internet connection") || !strings.Contains(out, "ctrl+r") {
		t.Errorf("failure view:\n%s", out)
	}
}

func TestBrowseEscape(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, cmd := press(t, m, key("x"), key("esc"))
	if m.query != "" || cmd != nil {
		t.Errorf("first esc should only clear the query (query %q)", m.query)
	}
	m, cmd = press(t, m, key("esc"))
	if cmd == nil {
		t.Fatal("esc on an empty query should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
