package models

import (
	"sort"
	"strings"
)

// FilterCriteria is the full criteria set for deriving a displayed
// issue list. Empty or "all" means unconstrained for every field.
type FilterCriteria struct {
	Search   string
	Category string
	Status   string
	Priority string
	State    string
	District string
	City     string
	Village  string
}

// Sort keys accepted by SortIssues.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortUpvotes = "upvotes"
)

func unconstrained(v string) bool {
	return v == "" || v == "all"
}

// Matches reports whether a single issue satisfies every set
// criterion. Predicates are independent and combined with AND, so
// filter order never changes the result set.
func (c FilterCriteria) Matches(issue Issue) bool {
	if !unconstrained(c.Search) {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(issue.Title), q) &&
			!strings.Contains(strings.ToLower(issue.Description), q) {
			return false
		}
	}
	if !unconstrained(c.Category) && string(issue.Category) != c.Category {
		return false
	}
	if !unconstrained(c.Status) && string(issue.Status) != c.Status {
		return false
	}
	if !unconstrained(c.Priority) && string(issue.Priority) != c.Priority {
		return false
	}
	if !unconstrained(c.State) && issue.Location.State != c.State {
		return false
	}
	if !unconstrained(c.District) && issue.Location.District != c.District {
		return false
	}
	if !unconstrained(c.City) && issue.Location.City != c.City {
		return false
	}
	if !unconstrained(c.Village) && issue.Location.Village != c.Village {
		return false
	}
	return true
}

// FilterIssues returns the subset of issues matching the criteria.
// The input slice is not modified; an empty result is a valid,
// non-error outcome.
func FilterIssues(issues []Issue, c FilterCriteria) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if c.Matches(issue) {
			out = append(out, issue)
		}
	}
	return out
}

// SortIssues orders a copy of issues by the given key: newest-first
// (default), oldest-first, or most-upvotes-first. Stable, so ties
// keep their incoming order.
func SortIssues(issues []Issue, key string) []Issue {
	out := make([]Issue, len(issues))
	copy(out, issues)

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReportedAt.Before(out[j].ReportedAt)
		})
	case SortUpvotes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Upvotes > out[j].Upvotes
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReportedAt.After(out[j].ReportedAt)
		})
	}
	return out
}
