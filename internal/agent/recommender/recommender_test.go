package recommender

import (
	"context"
	"testing"
)

func ids(t *testing.T, c *Catalog, goal, level, skills, career string) []string {
	t.Helper()
	got, err := c.Recommend(context.Background(), goal, level, skills, career)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	out := make([]string, len(got))
	for i, course := range got {
		out[i] = course.ID
	}
	return out
}

func TestRecommend(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name   string
		goal   string
		level  string
		skills string
		career string
		want   []string
	}{
		{"data scientist beginner python", "Learn Data Science", "Beginner", "Python", "Data Scientist", []string{"py-101", "ds-201", "ml-301"}},
		{"web developer advanced react", "Build web apps", "Advanced", "JavaScript, React", "Web Developer", []string{"web-202", "py-101", "web-101"}},
		{"career outranks level and skill", "Lead", "Advanced", "Python", "Manager", []string{"lead-101", "lead-201", "self-201"}},
		{"level only", "Learn", "Intermediate", "none", "", []string{"ds-201", "lead-201", "self-201"}},
		{"skill case insensitive", "Learn", "", "tensorflow", "", []string{"ml-301"}},
		{"nothing matches", "Learn", "", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(t, c, tt.goal, tt.level, tt.skills, tt.career)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRecommendAtMostThree(t *testing.T) {
	c := New(nil)
	got := ids(t, c, "", "Beginner", "", "")
	if len(got) != MaxResults {
		t.Fatalf("got %d courses, want %d", len(got), MaxResults)
	}
}

func TestRecommendCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(nil).Recommend(ctx, "", "Beginner", "", ""); err == nil {
		t.Fatal("expected context error")
	}
}

func TestLookupAndAll(t *testing.T) {
	c := New(nil)
	if got := len(c.All()); got != 19 {
		t.Errorf("catalog size: got %d, want 19", got)
	}
	course, ok := c.Lookup("ml-301")
	if !ok || course.Title != "Machine Learning Mastery" {
		t.Errorf("lookup ml-301: got %+v, %v", course, ok)
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Error("lookup of unknown id should fail")
	}

	all := c.All()
	all[0].Title = "mutated"
	if first, _ := c.Lookup(all[0].ID); first.Title == "mutated" {
		t.Error("All must return a copy")
	}
}
