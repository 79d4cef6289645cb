package models

import "strings"

// JobFilter holds optional criteria; an empty field imposes no constraint and
// all set fields are ANDed.
type JobFilter struct {
	Search   string `form:"search" json:"search,omitempty"`
	Location string `form:"location" json:"location,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Type     string `form:"type" json:"type,omitempty"`
}

func (f JobFilter) IsEmpty() bool {
	return f.Search == "" && f.Location == "" && f.Category == "" && f.Type == ""
}

// Matches reports whether job satisfies every set criterion. Search and
// location are case-insensitive substring matches, category and type are exact.
// The active flag is not considered.
func (f JobFilter) Matches(job *Job) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Company), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Category != "" && job.Category != f.Category {
		return false
	}
	if f.Type != "" && string(job.Type) != f.Type {
		return false
	}
	return true
}

// Apply returns the jobs matching f, preserving input order.
func (f JobFilter) Apply(jobs []Job) []Job {
	out := make([]Job, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}
