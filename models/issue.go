package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	Roads          IssueCategory = "roads"
	Water          IssueCategory = "water"
	Electricity    IssueCategory = "electricity"
	Sanitation     IssueCategory = "sanitation"
	PublicSpaces   IssueCategory = "public-spaces"
	Transportation IssueCategory = "transportation"
	Other          IssueCategory = "other"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "reported"
	InProgress IssueStatus = "in-progress"
	Resolved   IssueStatus = "resolved"
	Closed     IssueStatus = "closed"
)

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "low"
	Medium IssuePriority = "medium"
	High   IssuePriority = "high"
	Urgent IssuePriority = "urgent"
)

// Issue is the canonical, fully-populated issue record. Raw store
// records vary in shape; Normalize is the only way to build one of
// these from store data.
type Issue struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    IssueCategory  `json:"category"`
	Status      IssueStatus    `json:"status"`
	Priority    IssuePriority  `json:"priority"`
	Location    GeoLocation    `json:"location"`
	ReportedBy  string         `json:"reportedBy"`
	ReportedAt  time.Time      `json:"reportedAt"`
	Images      []string       `json:"images"`
	Duration    string         `json:"duration"`
	Upvotes     int            `json:"upvotes"`
	Comments    []IssueComment `json:"comments"`
}

// IssueComment exists in the data model but no authoring path does;
// the slice is always empty in responses.
type IssueComment struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issueId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Option pairs a machine value with a display label for the form and
// filter dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var CategoryOptions = []Option{
	{Value: string(Roads), Label: "Roads & Sidewalks"},
	{Value: string(Water), Label: "Water Services"},
	{Value: string(Electricity), Label: "Electricity & Lighting"},
	{Value: string(Sanitation), Label: "Sanitation & Waste"},
	{Value: string(PublicSpaces), Label: "Public Spaces"},
	{Value: string(Transportation), Label: "Public Transportation"},
	{Value: string(Other), Label: "Other"},
}

var StatusOptions = []Option{
	{Value: string(Reported), Label: "Reported"},
	{Value: string(InProgress), Label: "In Progress"},
	{Value: string(Resolved), Label: "Resolved"},
	{Value: string(Closed), Label: "Closed"},
}

var PriorityOptions = []Option{
	{Value: string(Low), Label: "Low"},
	{Value: string(Medium), Label: "Medium"},
	{Value: string(High), Label: "High"},
	{Value: string(Urgent), Label: "Urgent"},
}

var DurationOptions = []string{
	"Less than 24 hours",
	"1-3 days",
	"4-7 days",
	"1-2 weeks",
	"2-4 weeks",
	"1-3 months",
	"3-6 months",
	"More than 6 months",
}

// ValidCategory reports whether s is one of the category enum values.
func ValidCategory(s string) bool {
	switch IssueCategory(s) {
	case Roads, Water, Electricity, Sanitation, PublicSpaces, Transportation, Other:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the status enum values.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Reported, InProgress, Resolved, Closed:
		return true
	}
	return false
}

// ValidPriority reports whether s is one of the priority enum values.
func ValidPriority(s string) bool {
	switch IssuePriority(s) {
	case Low, Medium, High, Urgent:
		return true
	}
	return false
}

// ValidDuration reports whether s is one of the fixed duration labels.
func ValidDuration(s string) bool {
	for _, d := range DurationOptions {
		if d == s {
			return true
		}
	}
	return false
}
