package recommend

import (
	"math/rand"
	"strings"
	"sync"
)

// ==========================
// Category table
// ==========================

// category pairs a keyword with its candidate resources. The table is an
// ordered slice, not a map, so "first match wins" is deterministic.
type category struct {
	keyword   string
	resources []string
}

var categories = []category{
	{
		keyword: "math",
		resources: []string{
			"Khan Academy - Mathematics",
			"Professor Leonard YouTube Channel",
			"Paul's Online Math Notes",
			"Brilliant.org Math Courses",
		},
	},
	{
		keyword: "science",
		resources: []string{
			"CrashCourse Science Series",
			"MIT OpenCourseWare",
			"edX Science Courses",
			"Coursera Science Specializations",
		},
	},
	{
		keyword: "programming",
		resources: []string{
			"freeCodeCamp",
			"The Odin Project",
			"CS50 Harvard Course",
			"LeetCode for Practice",
		},
	},
	{
		keyword: "language",
		resources: []string{
			"Duolingo",
			"Babbel",
			"FluentU",
			"italki for Speaking Practice",
		},
	},
}

// fallback is returned when no category keyword matches the subject.
var fallback = []string{
	"Coursera",
	"edX",
	"Udemy",
	"YouTube Educational Channels",
}

// ==========================
// Recommender
// ==========================

// Recommender produces resource suggestions from a subject and a weekly hour
// budget. The randomness source is injected so tests can seed it; output is
// not reproducible across calls in production.
type Recommender struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

func New(src rand.Source) *Recommender {
	return &Recommender{rnd: rand.New(src)}
}

// Recommend returns a ", "-joined list of distinct resource names drawn from
// the first category whose keyword is a substring of the lower-cased subject,
// or from the fallback list when none matches. Any subject and any hours
// value (including zero or negative) is accepted.
func (r *Recommender) Recommend(subject string, hoursPerWeek float64) string {
	pool := fallback
	lower := strings.ToLower(subject)
	for _, c := range categories {
		if strings.Contains(lower, c.keyword) {
			pool = c.resources
			break
		}
	}

	n := resourceCount(hoursPerWeek)
	if n > len(pool) {
		n = len(pool)
	}

	r.mu.Lock()
	order := r.rnd.Perm(len(pool))
	r.mu.Unlock()

	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = pool[order[i]]
	}
	return strings.Join(picked, ", ")
}

// resourceCount maps the weekly hour budget to how many resources to suggest.
func resourceCount(hoursPerWeek float64) int {
	switch {
	case hoursPerWeek < 5:
		return 2
	case hoursPerWeek < 10:
		return 3
	default:
		return 4
	}
}
