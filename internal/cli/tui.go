package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/pkg/browse"
	errs "github.com/matzehuels/blogscope/pkg/errors"
	"github.com/matzehuels/blogscope/pkg/loader"
	"github.com/matzehuels/blogscope/pkg/view"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tabActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabStyle          = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle        = lipgloss.NewStyle().Foreground(colorRed)
)

// browseCommand creates the interactive browser command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse posts, users and comments interactively",
		Long: `Open an interactive browser over posts, users and comments.

Typing filters the current tab as you go. Keys:
  tab / shift+tab   switch between posts, users and comments
  ↑ / ↓             move the selection
  enter             open the selected post (or a comment's post)
  ctrl+s            cycle the sort key
  ctrl+o            toggle ascending / descending
  ctrl+r            reload
  esc               back, clear the search, or quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			// The alternate screen owns the terminal; errors are shown inline.
			c.Logger.SetOutput(io.Discard)
			defer c.Logger.SetOutput(cmd.ErrOrStderr())

			p := tea.NewProgram(newBrowseModel(cmd.Context(), b), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// browseModel - Interactive browser
// =============================================================================

// browseSource is the part of [browse.Browser] the interactive browser uses.
type browseSource interface {
	Corpus(ctx context.Context, withComments bool) (view.Corpus, error)
	PostDetail(ctx context.Context, id int) (*browse.PostDetail, error)
}

type browseTab int

const (
	tabPosts browseTab = iota
	tabUsers
	tabComments
	tabCount
)

func (t browseTab) String() string {
	switch t {
	case tabUsers:
		return "Users"
	case tabComments:
		return "Comments"
	default:
		return "Posts"
	}
}

type (
	corpusMsg loader.Snapshot[view.Corpus]
	detailMsg loader.Snapshot[*browse.PostDetail]
)

// browseModel is the bubbletea model behind "blogscope browse". Each tab
// keeps its own sort key and order; the search query is shared.
type browseModel struct {
	ctx    context.Context
	src    browseSource
	corpus *loader.Resource[view.Corpus]
	detail *loader.Resource[*browse.PostDetail]

	tab        browseTab
	query      string
	sorts      [tabCount]int
	orders     [tabCount]view.Order
	cursor     int
	offset     int
	height     int
	showDetail bool
	quitting   bool
}

func newBrowseModel(ctx context.Context, src browseSource) browseModel {
	return browseModel{
		ctx:    ctx,
		src:    src,
		corpus: loader.New[view.Corpus](nil),
		detail: loader.New[*browse.PostDetail](nil),
		orders: [tabCount]view.Order{view.Asc, view.Asc, view.Asc},
		height: 15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadCorpus()
}

func (m browseModel) loadCorpus() tea.Cmd {
	ch := m.corpus.Load(m.ctx, func(ctx context.Context) (view.Corpus, error) {
		return m.src.Corpus(ctx, true)
	})
	return func() tea.Msg { return corpusMsg(<-ch) }
}

func (m browseModel) loadDetail(postID int) tea.Cmd {
	ch := m.detail.Load(m.ctx, func(ctx context.Context) (*browse.PostDetail, error) {
		return m.src.PostDetail(ctx, postID)
	})
	return func() tea.Msg { return detailMsg(<-ch) }
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case corpusMsg, detailMsg:
		// Resources hold the state; the message only triggers a redraw.
		m.clampCursor()
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	case tea.KeyMsg:
		if m.showDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "backspace", "left":
		m.detail.Reset()
		m.showDetail = false
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		m.setQuery(m.query + string(msg.Runes))
		return m, nil
	case tea.KeySpace:
		m.setQuery(m.query + " ")
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.setQuery(string(r[:len(r)-1]))
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.query != "" {
			m.setQuery("")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.cursor, m.offset = 0, 0
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.cursor, m.offset = 0, 0
	case "up":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "ctrl+s":
		m.sorts[m.tab] = (m.sorts[m.tab] + 1) % m.sortKeyCount()
	case "ctrl+o":
		m.orders[m.tab] = m.orders[m.tab].Toggle()
	case "ctrl+r":
		return m, m.loadCorpus()
	case "enter":
		_, _, targets := m.rows()
		if m.cursor < len(targets) && targets[m.cursor] > 0 {
			m.showDetail = true
			return m, m.loadDetail(targets[m.cursor])
		}
	}
	return m, nil
}

func (m *browseModel) setQuery(q string) {
	m.query = q
	m.cursor, m.offset = 0, 0
}

func (m *browseModel) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
		m.offset = 0
	}
}

func (m browseModel) sortKeyCount() int {
	switch m.tab {
	case tabUsers:
		return len(view.UserSortKeys)
	case tabComments:
		return len(view.CommentSortKeys)
	default:
		return len(view.PostSortKeys)
	}
}

func (m browseModel) sortLabel() string {
	i, o := m.sorts[m.tab], string(m.orders[m.tab])
	switch m.tab {
	case tabUsers:
		return string(view.UserSortKeys[i]) + " " + o
	case tabComments:
		return string(view.CommentSortKeys[i]) + " " + o
	default:
		return string(view.PostSortKeys[i]) + " " + o
	}
}

func (m browseModel) rowCount() int {
	_, rows, _ := m.rows()
	return len(rows)
}

// rows returns the current tab's filtered and sorted table, plus for every
// row the post ID that enter opens (0 for none).
func (m browseModel) rows() (headers []string, rows [][]string, targets []int) {
	c := m.corpus.Snapshot().Value
	i, o := m.sorts[m.tab], m.orders[m.tab]

	switch m.tab {
	case tabUsers:
		users := view.FilterUsers(c.Users, view.UserQuery{Search: m.query, SortBy: view.UserSortKeys[i], Order: o})
		for _, u := range users {
			rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, u.Username, u.Email})
			targets = append(targets, 0)
		}
		return []string{"ID", "Name", "Username", "Email"}, rows, targets
	case tabComments:
		comments := view.FilterComments(c.Comments, c.Posts, c.Users, view.CommentQuery{Search: m.query, SortBy: view.CommentSortKeys[i], Order: o})
		for _, cm := range comments {
			rows = append(rows, []string{strconv.Itoa(cm.ID), strconv.Itoa(cm.PostID), truncate(cm.Name, 40), cm.Email})
			targets = append(targets, cm.PostID)
		}
		return []string{"ID", "Post", "Name", "Email"}, rows, targets
	default:
		posts := view.FilterPosts(c.Posts, c.Users, view.PostQuery{Search: m.query, SortBy: view.PostSortKeys[i], Order: o})
		users := view.UsersByID(c.Users)
		for _, p := range posts {
			rows = append(rows, []string{strconv.Itoa(p.ID), truncate(p.Title, 50), view.AuthorName(p, users)})
			targets = append(targets, p.ID)
		}
		return []string{"ID", "Title", "Author"}, rows, targets
	}
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showDetail {
		return m.detailView()
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("blogscope"))
	b.WriteString("  ")
	for t := browseTab(0); t < tabCount; t++ {
		style := tabStyle
		if t == m.tab {
			style = tabActiveStyle
		}
		b.WriteString(style.Render(t.String()))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Search: ") + StyleValue.Render(m.query) + StyleHighlight.Render("▏"))
	b.WriteString("\n\n")

	snap := m.corpus.Snapshot()
	switch snap.State {
	case loader.Idle, loader.Pending:
		if snap.Generation <= 1 || snap.State == loader.Idle {
			b.WriteString(listDimStyle.Render("Loading..."))
			b.WriteString("\n")
			return b.String()
		}
	case loader.Failed:
		b.WriteString(errorStyle.Render(iconError + " " + errs.UserMessage(snap.Err)))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("ctrl+r retry  esc quit"))
		return b.String()
	}

	headers, rows, _ := m.rows()
	if len(rows) == 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("No %s match %q", strings.ToLower(m.tab.String()), m.query)))
		b.WriteString("\n")
	} else {
		end := min(m.offset+m.height, len(rows))
		page := make([][]string, 0, end-m.offset)
		for i := m.offset; i < end; i++ {
			cursor := "  "
			if i == m.cursor {
				cursor = "▸ "
			}
			page = append(page, append([]string{cursor}, rows[i]...))
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers(append([]string{""}, headers...)...).
			Rows(page...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return styleHeader
				}
				if m.offset+row == m.cursor {
					return listSelectedStyle
				}
				return lipgloss.NewStyle()
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	status := fmt.Sprintf("  [%d/%d] · %s", min(m.cursor+1, len(rows)), len(rows), m.sortLabel())
	if snap.State == loader.Pending {
		status += " · refreshing"
	}
	b.WriteString(listDimStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to search  tab switch  ↑/↓ move  ⏎ open  ctrl+s sort  ctrl+o order  esc quit"))
	return b.String()
}

func (m browseModel) detailView() string {
	var b strings.Builder

	snap := m.detail.Snapshot()
	switch snap.State {
	case loader.Idle, loader.Pending:
		b.WriteString(listDimStyle.Render("Loading post..."))
		b.WriteString("\n")
		return b.String()
	case loader.Failed:
		b.WriteString(errorStyle.Render(iconError + " " + errs.UserMessage(snap.Err)))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("esc back"))
		return b.String()
	}

	d := snap.Value
	author := "Unknown"
	if d.Author != nil {
		author = d.Author.Name
	}
	b.WriteString(StyleTitle.Render(d.Post.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("by ") + StyleHighlight.Render(author))
	b.WriteString("\n\n")
	b.WriteString(d.Post.Body)
	b.WriteString("\n\n")

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))))
	b.WriteString("\n")
	for _, cm := range d.Comments {
		b.WriteString(StyleValue.Render(cm.Name) + " " + StyleDim.Render(cm.Email))
		b.WriteString("\n")
		b.WriteString("  " + StyleDim.Render(truncate(cm.Body, 100)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back"))
	return b.String()
}
