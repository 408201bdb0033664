package view

import (
	"slices"
	"testing"

	"github.com/matzehuels/blogscope/pkg/blog"
	errs "github.com/matzehuels/blogscope/pkg/errors"
)

func fixture() Corpus {
	return Corpus{
		Users: []blog.User{
			{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz", Phone: "1-770-736-8031", Website: "hildegard.org", Company: &blog.Company{Name: "Romaguera-Crona"}},
			{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv", Phone: "010-692-6593", Website: "anastasia.net", Company: &blog.Company{Name: "Deckow-Crist"}},
			{ID: 7, Name: "Zephyr Quinn", Username: "zq", Email: "zq@example.com"},
		},
		Posts: []blog.Post{
			{ID: 1, UserID: 1, Title: "Getting Started", Body: "hello world"},
			{ID: 2, UserID: 2, Title: "apples and oranges", Body: "fruit"},
			{ID: 3, UserID: 1, Title: "Banana bread", Body: "baking"},
			{ID: 9, UserID: 7, Title: "Unrelated title", Body: "Unrelated body"},
			{ID: 12, UserID: 99, Title: "Orphan", Body: "nobody wrote this"},
		},
		Comments: []blog.Comment{
			{ID: 1, PostID: 1, Name: "great start", Email: "a@x.io", Body: "thanks"},
			{ID: 2, PostID: 9, Name: "hmm", Email: "b@y.io", Body: "ok"},
			{ID: 3, PostID: 2, Name: "Fruit fan", Email: "c@z.io", Body: "love it"},
			{ID: 4, PostID: 500, Name: "lost", Email: "d@w.io", Body: "where am I"},
		},
	}
}

func postIDs(posts []blog.Post) []int {
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func userNames(users []blog.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return names
}

func commentIDs(comments []blog.Comment) []int {
	ids := make([]int, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func TestFilterPosts(t *testing.T) {
	c := fixture()
	tests := []struct {
		name string
		q    PostQuery
		want []int
	}{
		{"blank keeps all", PostQuery{}, []int{1, 2, 3, 9, 12}},
		{"whitespace keeps all", PostQuery{Search: "   "}, []int{1, 2, 3, 9, 12}},
		{"title match case-insensitive", PostQuery{Search: "BANANA"}, []int{3}},
		{"body match", PostQuery{Search: "fruit"}, []int{2}},
		{"author match", PostQuery{Search: "leanne"}, []int{1, 3}},
		{"cross-entity author only", PostQuery{Search: "zephyr"}, []int{9}},
		{"no match", PostQuery{Search: "kubernetes"}, []int{}},
		{"id desc", PostQuery{Order: Desc}, []int{12, 9, 3, 2, 1}},
		{"title asc", PostQuery{SortBy: PostByTitle}, []int{2, 3, 1, 12, 9}},
		{"title desc", PostQuery{SortBy: PostByTitle, Order: Desc}, []int{9, 12, 1, 3, 2}},
		{"author asc, unresolved first", PostQuery{SortBy: PostByAuthor}, []int{12, 2, 1, 3, 9}},
		{"author desc stable ties", PostQuery{SortBy: PostByAuthor, Order: Desc}, []int{9, 1, 3, 2, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postIDs(FilterPosts(c.Posts, c.Users, tt.q))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterPosts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterPostsUnresolvedAuthor(t *testing.T) {
	posts := []blog.Post{{ID: 1, UserID: 42, Title: "t", Body: "b"}}

	got := FilterPosts(posts, nil, PostQuery{Search: "anyone"})
	if len(got) != 0 {
		t.Errorf("unresolved author should not match, got %v", postIDs(got))
	}
	got = FilterPosts(posts, nil, PostQuery{SortBy: PostByAuthor})
	if len(got) != 1 {
		t.Errorf("unresolved author should still list, got %v", postIDs(got))
	}
	if name := AuthorName(posts[0], UsersByID(nil)); name != "" {
		t.Errorf("AuthorName() = %q, want empty", name)
	}
}

func TestFilterPostsDoesNotMutateInput(t *testing.T) {
	c := fixture()
	before := postIDs(c.Posts)
	_ = FilterPosts(c.Posts, c.Users, PostQuery{Order: Desc})
	if !slices.Equal(postIDs(c.Posts), before) {
		t.Errorf("input reordered: %v", postIDs(c.Posts))
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := fixture()
	pq := PostQuery{Search: "a", SortBy: PostByTitle, Order: Desc}
	once := FilterPosts(c.Posts, c.Users, pq)
	twice := FilterPosts(once, c.Users, pq)
	if !slices.Equal(postIDs(once), postIDs(twice)) {
		t.Errorf("posts: once %v, twice %v", postIDs(once), postIDs(twice))
	}

	uq := UserQuery{Search: "e", SortBy: UserByEmail}
	u1 := FilterUsers(c.Users, uq)
	u2 := FilterUsers(u1, uq)
	if !slices.Equal(userNames(u1), userNames(u2)) {
		t.Errorf("users: once %v, twice %v", userNames(u1), userNames(u2))
	}

	cq := CommentQuery{Search: "o", SortBy: CommentByName, Order: Desc}
	c1 := FilterComments(c.Comments, c.Posts, c.Users, cq)
	c2 := FilterComments(c1, c.Posts, c.Users, cq)
	if !slices.Equal(commentIDs(c1), commentIDs(c2)) {
		t.Errorf("comments: once %v, twice %v", commentIDs(c1), commentIDs(c2))
	}
}

func TestFilterUsersNameOrder(t *testing.T) {
	users := []blog.User{{ID: 1, Name: "Bob"}, {ID: 2, Name: "Alice"}}

	asc := FilterUsers(users, UserQuery{SortBy: UserByName, Order: Asc})
	if got := userNames(asc); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Errorf("asc = %v", got)
	}
	desc := FilterUsers(users, UserQuery{SortBy: UserByName, Order: Desc})
	if got := userNames(desc); !slices.Equal(got, []string{"Bob", "Alice"}) {
		t.Errorf("desc = %v", got)
	}
}

func TestFilterUsers(t *testing.T) {
	c := fixture()
	tests := []struct {
		name string
		q    UserQuery
		want []string
	}{
		{"blank", UserQuery{}, []string{"Ervin Howell", "Leanne Graham", "Zephyr Quinn"}},
		{"username", UserQuery{Search: "antonette"}, []string{"Ervin Howell"}},
		{"email", UserQuery{Search: "APRIL.BIZ"}, []string{"Leanne Graham"}},
		{"phone", UserQuery{Search: "692"}, []string{"Ervin Howell"}},
		{"website", UserQuery{Search: "hildegard"}, []string{"Leanne Graham"}},
		{"company excluded from listing", UserQuery{Search: "romaguera"}, []string{}},
		{"username desc", UserQuery{SortBy: UserByUsername, Order: Desc}, []string{"Zephyr Quinn", "Leanne Graham", "Ervin Howell"}},
		{"email asc", UserQuery{SortBy: UserByEmail}, []string{"Ervin Howell", "Leanne Graham", "Zephyr Quinn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userNames(FilterUsers(c.Users, tt.q))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterUsers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterComments(t *testing.T) {
	c := fixture()
	tests := []struct {
		name string
		q    CommentQuery
		want []int
	}{
		{"blank", CommentQuery{}, []int{1, 2, 3, 4}},
		{"own name", CommentQuery{Search: "fan"}, []int{3}},
		{"own body", CommentQuery{Search: "where"}, []int{4}},
		{"own email", CommentQuery{Search: "b@y"}, []int{2}},
		{"post title", CommentQuery{Search: "apples"}, []int{3}},
		{"post author", CommentQuery{Search: "zephyr"}, []int{2}},
		{"orphan comment no cross match", CommentQuery{Search: "leanne"}, []int{1}},
		{"id desc", CommentQuery{Order: Desc}, []int{4, 3, 2, 1}},
		{"name asc", CommentQuery{SortBy: CommentByName}, []int{3, 1, 2, 4}},
		{"email desc", CommentQuery{SortBy: CommentByEmail, Order: Desc}, []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commentIDs(FilterComments(c.Comments, c.Posts, c.Users, tt.q))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterComments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := fixture()
	for _, q := range []string{"", "   ", "\t\n"} {
		r := Search(c, q, KindAll)
		if r.Len() != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, r.Len())
		}
	}

	if n := len(FilterPosts(c.Posts, c.Users, PostQuery{})); n != len(c.Posts) {
		t.Errorf("listing with empty query returned %d posts, want %d", n, len(c.Posts))
	}
	if n := len(FilterUsers(c.Users, UserQuery{})); n != len(c.Users) {
		t.Errorf("listing with empty query returned %d users, want %d", n, len(c.Users))
	}
}

func TestSearch(t *testing.T) {
	c := fixture()

	r := Search(c, "zephyr", KindAll)
	if !slices.Equal(postIDs(r.Posts), []int{9}) {
		t.Errorf("posts = %v, want [9]", postIDs(r.Posts))
	}
	if !slices.Equal(userNames(r.Users), []string{"Zephyr Quinn"}) {
		t.Errorf("users = %v", userNames(r.Users))
	}
	if !slices.Equal(commentIDs(r.Comments), []int{2}) {
		t.Errorf("comments = %v, want [2]", commentIDs(r.Comments))
	}

	r = Search(c, "crist", KindAll)
	if !slices.Equal(userNames(r.Users), []string{"Ervin Howell"}) {
		t.Errorf("company match: users = %v", userNames(r.Users))
	}
}

func TestSearchKinds(t *testing.T) {
	c := fixture()
	tests := []struct {
		kind                   Kind
		posts, users, comments int
	}{
		{KindAll, 1, 1, 1},
		{"", 1, 1, 1},
		{KindPosts, 1, 0, 0},
		{KindUsers, 0, 1, 0},
		{KindComments, 0, 0, 1},
	}
	for _, tt := range tests {
		r := Search(c, "zephyr", tt.kind)
		if len(r.Posts) != tt.posts || len(r.Users) != tt.users || len(r.Comments) != tt.comments {
			t.Errorf("Search(kind=%q) = %d/%d/%d, want %d/%d/%d", tt.kind,
				len(r.Posts), len(r.Users), len(r.Comments), tt.posts, tt.users, tt.comments)
		}
	}
}

func TestSearchKeepsCorpusOrder(t *testing.T) {
	c := fixture()
	r := Search(c, "e", KindPosts)
	ids := postIDs(r.Posts)
	if !slices.IsSorted(ids) {
		t.Errorf("posts = %v, want corpus order", ids)
	}
}

func TestParse(t *testing.T) {
	if o, err := ParseOrder("DESC"); err != nil || o != Desc {
		t.Errorf("ParseOrder(DESC) = %q, %v", o, err)
	}
	if o, err := ParseOrder(""); err != nil || o != Asc {
		t.Errorf("ParseOrder(\"\") = %q, %v", o, err)
	}
	if _, err := ParseOrder("sideways"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParseOrder(sideways) error = %v", err)
	}

	if k, err := ParsePostSortKey(""); err != nil || k != PostByID {
		t.Errorf("ParsePostSortKey(\"\") = %q, %v", k, err)
	}
	if k, err := ParsePostSortKey("Author"); err != nil || k != PostByAuthor {
		t.Errorf("ParsePostSortKey(Author) = %q, %v", k, err)
	}
	if _, err := ParsePostSortKey("date"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParsePostSortKey(date) error = %v", err)
	}

	if k, err := ParseUserSortKey(""); err != nil || k != UserByName {
		t.Errorf("ParseUserSortKey(\"\") = %q, %v", k, err)
	}
	if _, err := ParseUserSortKey("phone"); err == nil {
		t.Error("ParseUserSortKey(phone) should fail")
	}

	if k, err := ParseCommentSortKey("email"); err != nil || k != CommentByEmail {
		t.Errorf("ParseCommentSortKey(email) = %q, %v", k, err)
	}

	if k, err := ParseKind("blogs"); err != nil || k != KindPosts {
		t.Errorf("ParseKind(blogs) = %q, %v", k, err)
	}
	if k, err := ParseKind(""); err != nil || k != KindAll {
		t.Errorf("ParseKind(\"\") = %q, %v", k, err)
	}
	if _, err := ParseKind("tags"); err == nil {
		t.Error("ParseKind(tags) should fail")
	}
}

func TestOrderToggle(t *testing.T) {
	if Asc.Toggle() != Desc || Desc.Toggle() != Asc {
		t.Error("Toggle() should flip direction")
	}
}
