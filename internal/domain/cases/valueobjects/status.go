package valueobjects

import (
	"fmt"
	"strings"
)

type CaseStatus string

const (
	StatusNew        CaseStatus = "new"
	StatusInProgress CaseStatus = "in_progress"
	StatusSolved     CaseStatus = "solved"
	StatusClosed     CaseStatus = "closed"
)

// Desk labels shown to operators and stored in legacy exports.
var statusLabels = map[CaseStatus]string{
	StatusNew:        "جديدة",
	StatusInProgress: "قيد التنفيذ",
	StatusSolved:     "تم حلها",
	StatusClosed:     "مغلقة",
}

// AllStatuses lists the statuses in workflow order.
func AllStatuses() []CaseStatus {
	return []CaseStatus{StatusNew, StatusInProgress, StatusSolved, StatusClosed}
}

// ParseCaseStatus accepts either the status code or its desk label.
func ParseCaseStatus(s string) (CaseStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("status is required")
	}
	if status := CaseStatus(strings.ToLower(s)); status.IsValid() {
		return status, nil
	}
	for status, label := range statusLabels {
		if label == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid case status: %s", s)
}

func (s CaseStatus) String() string {
	return string(s)
}

func (s CaseStatus) Label() string {
	return statusLabels[s]
}

func (s CaseStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsActive reports whether the case still needs work.
func (s CaseStatus) IsActive() bool {
	return s != StatusSolved && s != StatusClosed
}

// StatusesMatching returns the statuses whose code or label contains the
// lower-cased term. Used by keyword search.
func StatusesMatching(term string) []CaseStatus {
	var matched []CaseStatus
	for _, status := range AllStatuses() {
		if strings.Contains(string(status), term) || strings.Contains(status.Label(), term) {
			matched = append(matched, status)
		}
	}
	return matched
}
