package cases

import (
	"fmt"
	"strings"

	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

// DateField names the case date a year filter applies to.
type DateField string

const (
	DateFieldCreated  DateField = "created"
	DateFieldReceived DateField = "received"
	DateFieldModified DateField = "modified"
	DateFieldSolved   DateField = "solved"
)

// ParseDateField accepts short names and the legacy column names
// (CreatedDate, ReceivedDate...). Blank input selects the creation date.
func ParseDateField(s string) (DateField, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, "date")
	key = strings.TrimSuffix(key, "_")
	switch key {
	case "", "created":
		return DateFieldCreated, nil
	case "received":
		return DateFieldReceived, nil
	case "modified":
		return DateFieldModified, nil
	case "solved":
		return DateFieldSolved, nil
	}
	return "", fmt.Errorf("invalid date field: %s", s)
}

// SearchMode selects between one free-text term and per-field terms.
type SearchMode string

const (
	SearchModeFields        SearchMode = "fields"
	SearchModeComprehensive SearchMode = "comprehensive"
)

// comprehensiveLabel is the desk label for comprehensive search.
const comprehensiveLabel = "شامل"

func ParseSearchMode(s string) SearchMode {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(SearchModeComprehensive)) || s == comprehensiveLabel {
		return SearchModeComprehensive
	}
	return SearchModeFields
}

// Ordering of search results.
type Ordering int

const (
	// OrderByRecentActivity sorts by modification date descending, never
	// modified cases last, then by creation date descending.
	OrderByRecentActivity Ordering = iota
	// OrderByNewest sorts by creation date descending.
	OrderByNewest
)

// SearchCriteria is a sparse query over the case collection. Blank string
// fields and nil pointers impose no constraint.
type SearchCriteria struct {
	Mode SearchMode
	Term string

	CustomerName       string
	SubscriberNumber   string
	Address            string
	Status             *vo.CaseStatus
	CategoryName       string
	EmployeeName       string
	ProblemDescription string
	ActionsTaken       string
	CorrespondenceText string
	AttachmentText     string

	Year      *int
	DateField DateField

	Ordering Ordering
}

// IsComprehensive reports whether the single term search applies. A
// comprehensive request with a blank term falls back to field search.
func (c SearchCriteria) IsComprehensive() bool {
	return c.Mode == SearchModeComprehensive && !textnorm.IsBlank(c.Term)
}

// EffectiveDateField returns the date field for the year filter.
func (c SearchCriteria) EffectiveDateField() DateField {
	if c.DateField == "" {
		return DateFieldCreated
	}
	return c.DateField
}
