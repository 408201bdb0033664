package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/pkg/view"
)

// searchCommand creates the cross-entity search command.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		kind   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts, users and comments",
		Long: `Search posts, users and comments at once.

Posts match on title, body or author name. Users match on name, username,
email, phone, website or company name. Comments match on name, body, email
or the title and author of their post. Use --type to restrict results to
one kind. A blank query finds nothing.`,
		Example: `  blogscope search "dolor sit"
  blogscope search romaguera --type users`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := view.ParseKind(kind)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			withComments := k == view.KindAll || k == view.KindComments
			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Searching...")
			spinner.Start()
			corpus, err := b.Corpus(cmd.Context(), withComments)
			spinner.Stop()
			if err != nil {
				return err
			}

			res := view.Search(corpus, query, k)
			w := stdout(cmd)
			if asJSON {
				return writeJSON(w, res)
			}

			if res.Len() == 0 {
				printWarning(w, "No results for %q", query)
				return nil
			}
			printSuccess(w, "%d results for %q", res.Len(), query)

			if len(res.Posts) > 0 {
				fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Posts (%d)", len(res.Posts))))
				users := view.UsersByID(corpus.Users)
				rows := make([][]string, len(res.Posts))
				for i, p := range res.Posts {
					rows[i] = []string{strconv.Itoa(p.ID), truncate(p.Title, 50), view.AuthorName(p, users)}
				}
				printTable(w, []string{"ID", "Title", "Author"}, rows)
			}
			if len(res.Users) > 0 {
				fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Users (%d)", len(res.Users))))
				rows := make([][]string, len(res.Users))
				for i, u := range res.Users {
					rows[i] = []string{strconv.Itoa(u.ID), u.Name, u.Email, u.CompanyName()}
				}
				printTable(w, []string{"ID", "Name", "Email", "Company"}, rows)
			}
			if len(res.Comments) > 0 {
				fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Comments (%d)", len(res.Comments))))
				printTable(w, []string{"ID", "Post", "Name", "Email"}, commentRows(res.Comments))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "all", "restrict results: all, posts (or blogs), users, comments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")
	return cmd
}
