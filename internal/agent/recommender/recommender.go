package recommender

import (
	"context"
	"sort"
	"strings"

	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// Score weights. Career outranks level, which outranks a skill overlap, so
// any career match beats every non-career match.
const (
	WeightCareer = 4
	WeightLevel  = 2
	WeightSkill  = 1

	MaxResults = 3
)

// Catalog is a recommender over an in-memory course list.
type Catalog struct {
	courses []model.Course
	byID    map[string]int
}

// New builds a recommender over courses. A nil list uses the built-in catalog.
func New(courses []model.Course) *Catalog {
	if courses == nil {
		courses = Courses
	}
	c := &Catalog{
		courses: courses,
		byID:    make(map[string]int, len(courses)),
	}
	for i, course := range courses {
		c.byID[course.ID] = i
	}
	return c
}

type scored struct {
	course model.Course
	score  int
}

// Recommend ranks the catalog against the user's profile and returns at most
// MaxResults courses. Courses scoring zero are dropped; ties keep catalog order.
// goal is accepted for logging only.
func (c *Catalog) Recommend(ctx context.Context, goal, level, skills, careerPath string) ([]model.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logx.Info().
		Str("goal", goal).
		Str("level", level).
		Str("skills", skills).
		Str("career_path", careerPath).
		Msg("Searching courses")

	userSkills := splitSkills(skills)
	career := strings.ToLower(careerPath)

	var ranked []scored
	for _, course := range c.courses {
		score := 0
		if careerMatches(course.CareerPath, career) {
			score += WeightCareer
		}
		if level != "" && strings.EqualFold(course.Level, level) {
			score += WeightLevel
		}
		if skillOverlap(course.Skills, userSkills) {
			score += WeightSkill
		}
		if score > 0 {
			ranked = append(ranked, scored{course: course, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	out := make([]model.Course, len(ranked))
	for i, r := range ranked {
		out[i] = r.course
	}
	return out, nil
}

// Lookup returns a course by id.
func (c *Catalog) Lookup(id string) (model.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Course{}, false
	}
	return c.courses[i], true
}

// All returns a copy of the catalog in its stored order.
func (c *Catalog) All() []model.Course {
	out := make([]model.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// careerMatches reports whether any of the course's career paths appears in
// the user's career path text.
func careerMatches(paths []string, career string) bool {
	if career == "" {
		return false
	}
	for _, p := range paths {
		if strings.Contains(career, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func skillOverlap(courseSkills []string, userSkills []string) bool {
	for _, us := range userSkills {
		for _, cs := range courseSkills {
			if strings.EqualFold(us, cs) {
				return true
			}
		}
	}
	return false
}

func splitSkills(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
