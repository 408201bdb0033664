package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/pkg/blog"
	"github.com/matzehuels/blogscope/pkg/view"
)

// listFlags holds the flags shared by the listing commands.
type listFlags struct {
	search string
	sort   string
	order  string
	limit  int
	json   bool
}

func (f *listFlags) register(cmd *cobra.Command, sortKeys string) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive text filter")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key: "+sortKeys)
	cmd.Flags().StringVar(&f.order, "order", "asc", "sort order: asc or desc")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "show at most n rows (0 = all)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of a table")
}

// postsCommand creates the posts listing command.
func (c *CLI) postsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts, filtered and sorted",
		Long: `List posts from the blog API.

A search matches the title, body or author name, ignoring case. An empty
search lists every post.`,
		Example: `  blogscope posts --search lorem --sort author --order desc
  blogscope posts -n 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := view.ParsePostSortKey(flags.sort)
			if err != nil {
				return err
			}
			order, err := view.ParseOrder(flags.order)
			if err != nil {
				return err
			}

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			prog := newProgress(c.Logger)
			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Loading posts...")
			spinner.Start()
			corpus, err := b.Corpus(cmd.Context(), false)
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done("Loaded " + strconv.Itoa(len(corpus.Posts)) + " posts")

			posts := view.FilterPosts(corpus.Posts, corpus.Users, view.PostQuery{
				Search: flags.search,
				SortBy: key,
				Order:  order,
			})
			matched := len(posts)
			posts = limit(posts, flags.limit)

			w := stdout(cmd)
			if flags.json {
				return writeJSON(w, posts)
			}
			users := view.UsersByID(corpus.Users)
			rows := make([][]string, len(posts))
			for i, p := range posts {
				rows[i] = []string{strconv.Itoa(p.ID), truncate(p.Title, 50), view.AuthorName(p, users)}
			}
			printTable(w, []string{"ID", "Title", "Author"}, rows)
			printStats(w, matched, len(corpus.Posts), "posts", string(key)+" "+string(order))
			return nil
		},
	}

	flags.register(cmd, "id, title, author")
	return cmd
}

// usersCommand creates the users listing command.
func (c *CLI) usersCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users, filtered and sorted",
		Long: `List users from the blog API.

A search matches the name, username, email, phone or website, ignoring
case. Company names are only matched by "blogscope search".`,
		Example: `  blogscope users --sort email --order desc`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := view.ParseUserSortKey(flags.sort)
			if err != nil {
				return err
			}
			order, err := view.ParseOrder(flags.order)
			if err != nil {
				return err
			}

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Loading users...")
			spinner.Start()
			all, err := b.Users(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}

			users := view.FilterUsers(all, view.UserQuery{Search: flags.search, SortBy: key, Order: order})
			matched := len(users)
			users = limit(users, flags.limit)

			w := stdout(cmd)
			if flags.json {
				return writeJSON(w, users)
			}
			rows := make([][]string, len(users))
			for i, u := range users {
				rows[i] = []string{strconv.Itoa(u.ID), u.Name, u.Username, u.Email, u.CompanyName()}
			}
			printTable(w, []string{"ID", "Name", "Username", "Email", "Company"}, rows)
			printStats(w, matched, len(all), "users", string(key)+" "+string(order))
			return nil
		},
	}

	flags.register(cmd, "name, username, email")
	return cmd
}

// commentsCommand creates the comments listing command.
func (c *CLI) commentsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List comments, filtered and sorted",
		Long: `List comments from the blog API.

A search matches the comment name, body or email, or the title and author
of the post it belongs to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := view.ParseCommentSortKey(flags.sort)
			if err != nil {
				return err
			}
			order, err := view.ParseOrder(flags.order)
			if err != nil {
				return err
			}

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Loading comments...")
			spinner.Start()
			corpus, err := b.Corpus(cmd.Context(), true)
			spinner.Stop()
			if err != nil {
				return err
			}

			comments := view.FilterComments(corpus.Comments, corpus.Posts, corpus.Users, view.CommentQuery{
				Search: flags.search,
				SortBy: key,
				Order:  order,
			})
			matched := len(comments)
			comments = limit(comments, flags.limit)

			w := stdout(cmd)
			if flags.json {
				return writeJSON(w, comments)
			}
			printTable(w, []string{"ID", "Post", "Name", "Email"}, commentRows(comments))
			printStats(w, matched, len(corpus.Comments), "comments", string(key)+" "+string(order))
			return nil
		},
	}

	flags.register(cmd, "id, name, email")
	return cmd
}

func commentRows(comments []blog.Comment) [][]string {
	rows := make([][]string, len(comments))
	for i, cm := range comments {
		rows[i] = []string{strconv.Itoa(cm.ID), strconv.Itoa(cm.PostID), truncate(cm.Name, 40), cm.Email}
	}
	return rows
}

// limit returns the first n items, or all of them when n <= 0.
func limit[T any](items []T, n int) []T {
	if n > 0 && n < len(items) {
		return items[:n]
	}
	return items
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
