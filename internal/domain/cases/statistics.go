package cases

import (
	"time"

	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
)

// Statistics is a derived summary of the case collection. It is never stored.
type Statistics struct {
	TotalCases            int
	NewCases              int
	InProgressCases       int
	SolvedCases           int
	ClosedCases           int
	ActiveCases           int
	CasesThisMonth        int
	CasesThisYear         int
	AverageResolutionDays float64
	MostCommonCategory    string
	MostActiveEmployee    string
	LastCaseDate          *time.Time
	TotalAttachments      int64
	TotalCorrespondences  int64
}

// StatisticsInput carries everything the aggregation needs so it can stay a
// pure function of its arguments.
type StatisticsInput struct {
	Cases                []*Case
	Names                NameLookup
	TotalAttachments     int64
	TotalCorrespondences int64
	Now                  time.Time
	Location             *time.Location
}

// ComputeStatistics aggregates in a single pass. Ties for most common
// category and most active employee go to the lowest id.
func ComputeStatistics(in StatisticsInput) *Statistics {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	now := in.Now.In(loc)

	stats := &Statistics{
		TotalCases:           len(in.Cases),
		TotalAttachments:     in.TotalAttachments,
		TotalCorrespondences: in.TotalCorrespondences,
	}

	categoryCounts := make(map[uint]int)
	creatorCounts := make(map[uint]int)
	var resolutionDays float64
	var resolved int

	for _, c := range in.Cases {
		switch c.Status() {
		case vo.StatusNew:
			stats.NewCases++
		case vo.StatusInProgress:
			stats.InProgressCases++
		case vo.StatusSolved:
			stats.SolvedCases++
		case vo.StatusClosed:
			stats.ClosedCases++
		}
		if c.Status().IsActive() {
			stats.ActiveCases++
		}

		created := c.CreatedAt().In(loc)
		if created.Year() == now.Year() {
			stats.CasesThisYear++
			if created.Month() == now.Month() {
				stats.CasesThisMonth++
			}
		}
		if stats.LastCaseDate == nil || c.CreatedAt().After(*stats.LastCaseDate) {
			last := c.CreatedAt()
			stats.LastCaseDate = &last
		}

		if c.Status() == vo.StatusSolved {
			if solvedAt := c.SolvedAt(); solvedAt != nil {
				resolutionDays += solvedAt.Sub(c.CreatedAt()).Hours() / 24
				resolved++
			}
		}

		categoryCounts[c.CategoryID()]++
		creatorCounts[c.CreatedByID()]++
	}

	if resolved > 0 {
		stats.AverageResolutionDays = resolutionDays / float64(resolved)
	}
	if id, ok := topByCount(categoryCounts); ok {
		stats.MostCommonCategory = in.Names.Categories[id]
	}
	if id, ok := topByCount(creatorCounts); ok {
		stats.MostActiveEmployee = in.Names.Employees[id]
	}

	return stats
}

func topByCount(counts map[uint]int) (uint, bool) {
	var bestID uint
	bestCount := 0
	for id, n := range counts {
		if n > bestCount || (n == bestCount && id < bestID) {
			bestID, bestCount = id, n
		}
	}
	return bestID, bestCount > 0
}
