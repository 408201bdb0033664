package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/blogscope/pkg/errors"
)

// postCommand creates the single-post command.
func (c *CLI) postCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "post <id>",
		Short:   "Show a post with its author and comments",
		Example: `  blogscope post 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Loading post %d...", id))
			spinner.Start()
			d, err := b.PostDetail(cmd.Context(), id)
			spinner.Stop()
			if err != nil {
				return err
			}

			w := stdout(cmd)
			if asJSON {
				return writeJSON(w, d)
			}

			author := "Unknown"
			if d.Author != nil {
				author = d.Author.Name
			}
			fmt.Fprintln(w, StyleTitle.Render(d.Post.Title))
			printKeyValue(w, "Author", author)
			printKeyValue(w, "Post", strconv.Itoa(d.Post.ID))
			fmt.Fprintln(w)
			fmt.Fprintln(w, d.Post.Body)
			fmt.Fprintln(w)
			printComments(w, len(d.Comments))
			if len(d.Comments) > 0 {
				printTable(w, []string{"ID", "Post", "Name", "Email"}, commentRows(d.Comments))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

// userCommand creates the single-user command.
func (c *CLI) userCommand() *cobra.Command {
	var (
		withComments bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:     "user <id>",
		Short:   "Show a user with their posts",
		Example: `  blogscope user 3 --comments`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			b, closeFn, err := c.newBrowser(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Loading user %d...", id))
			spinner.Start()
			d, err := b.UserDetail(cmd.Context(), id, withComments)
			spinner.Stop()
			if err != nil {
				return err
			}

			w := stdout(cmd)
			if asJSON {
				return writeJSON(w, d)
			}

			u := d.User
			fmt.Fprintln(w, StyleTitle.Render(u.Name)+" "+StyleDim.Render("@"+u.Username))
			printKeyValue(w, "Email", u.Email)
			if u.Phone != "" {
				printKeyValue(w, "Phone", u.Phone)
			}
			if u.Website != "" {
				printKeyValue(w, "Website", u.Website)
			}
			if u.Company != nil {
				printKeyValue(w, "Company", u.Company.Name)
			}
			if u.Address != nil {
				printKeyValue(w, "City", u.Address.City)
			}
			fmt.Fprintln(w)

			rows := make([][]string, len(d.Posts))
			for i, p := range d.Posts {
				rows[i] = []string{strconv.Itoa(p.ID), truncate(p.Title, 60)}
			}
			printInfo(w, "%d posts", len(d.Posts))
			if len(rows) > 0 {
				printTable(w, []string{"ID", "Title"}, rows)
			}
			if withComments {
				printComments(w, len(d.Comments))
				if len(d.Comments) > 0 {
					printTable(w, []string{"ID", "Post", "Name", "Email"}, commentRows(d.Comments))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withComments, "comments", false, "also list comments on the user's posts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printComments(w io.Writer, n int) {
	if n == 0 {
		printInfo(w, "No comments")
		return
	}
	printInfo(w, "%d comments", n)
}

// parseID parses a positive resource ID.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
