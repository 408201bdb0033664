package content

import (
	"testing"

	"github.com/matzehuels/blogscope/pkg/blog"
)

func TestEnglishCurated(t *testing.T) {
	p := blog.Post{ID: 1, UserID: 4, Title: "sunt aut facere", Body: "quia et suscipit"}
	got := English(p)

	if got.Title != "Getting Started with React Development" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.ID != 1 || got.UserID != 4 {
		t.Errorf("identity fields changed: %+v", got)
	}
	if p.Title != "sunt aut facere" {
		t.Error("English() mutated its argument")
	}
}

func TestEnglishGenericRotation(t *testing.T) {
	tests := []struct {
		id        int
		wantTitle string
		wantBody  int
	}{
		{16, "Microservices Architecture", 5},
		{17, "Performance Monitoring", 6},
		{20, "Full-Stack Development Guide", 9},
		{21, "Web Development Best Practices", 0},
		{100, "Full-Stack Development Guide", 9},
		{0, "Full-Stack Development Guide", 9},
	}

	for _, tt := range tests {
		got := English(blog.Post{ID: tt.id})
		if got.Title != tt.wantTitle {
			t.Errorf("id %d: Title = %q, want %q", tt.id, got.Title, tt.wantTitle)
		}
		if got.Body != genericBodies[tt.wantBody] {
			t.Errorf("id %d: Body = %q, want genericBodies[%d]", tt.id, got.Body, tt.wantBody)
		}
	}
}

func TestEnglishDeterministic(t *testing.T) {
	for id := 1; id <= 120; id++ {
		a, b := English(blog.Post{ID: id}), English(blog.Post{ID: id})
		if a != b {
			t.Fatalf("id %d: English() not deterministic", id)
		}
		if a.Title == "" || a.Body == "" {
			t.Fatalf("id %d: empty title or body", id)
		}
	}
}

func TestEnglishAll(t *testing.T) {
	in := []blog.Post{{ID: 9, Title: "x"}, {ID: 30, Title: "y"}}
	out := EnglishAll(in)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Title != "Understanding React Hooks and State Management" {
		t.Errorf("out[0].Title = %q", out[0].Title)
	}
	if in[0].Title != "x" || in[1].Title != "y" {
		t.Error("EnglishAll() mutated its input")
	}
	if len(EnglishAll(nil)) != 0 {
		t.Error("EnglishAll(nil) should be empty")
	}
}
