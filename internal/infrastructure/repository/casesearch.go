package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/infrastructure/database"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

// textPredicates are the substring predicates of the search queries,
// rendered with the case folding function of one SQL dialect.
type textPredicates struct {
	fold           string
	correspondence string
	attachment     string
	comprehensive  string
	keyword        string
}

var (
	sqlitePredicates = newTextPredicates(database.SQLiteFoldFunc)
	lowerPredicates  = newTextPredicates("LOWER")
)

// predicatesFor picks the folding available on db. MySQL's LOWER handles
// any script; SQLite's does not, so its connections carry casefold.
func predicatesFor(db *gorm.DB) *textPredicates {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return sqlitePredicates
	}
	return lowerPredicates
}

func newTextPredicates(fold string) *textPredicates {
	p := &textPredicates{fold: fold}
	p.correspondence = "EXISTS (SELECT 1 FROM correspondences co WHERE co.case_id = cases.id AND " +
		p.like("co.message_content") + ")"
	p.attachment = "EXISTS (SELECT 1 FROM attachments att WHERE att.case_id = cases.id AND (" +
		p.like("COALESCE(att.description, '')") + " OR " + p.like("att.file_name") + "))"

	p.comprehensive = strings.Join([]string{
		p.like("cases.customer_name"),
		p.like("COALESCE(cases.subscriber_number, '')"),
		p.like("COALESCE(cases.address, '')"),
		p.like("COALESCE(cases.problem_description, '')"),
		p.like("COALESCE(cases.actions_taken, '')"),
		p.correspondence,
		p.attachment,
	}, " OR ")

	p.keyword = strings.Join([]string{
		p.like("cases.customer_name"),
		p.like("COALESCE(cases.subscriber_number, '')"),
		p.like("COALESCE(cases.phone, '')"),
		"cases.category_id IN (SELECT ic.id FROM issue_categories ic WHERE " + p.like("ic.category_name") + ")",
	}, " OR ")
	return p
}

// like is a case-insensitive substring predicate on a column expression.
// Its argument comes from textnorm.ContainsPattern.
func (p *textPredicates) like(column string) string {
	return p.fold + "(" + column + ") LIKE ? ESCAPE '" + textnorm.LikeEscape + "'"
}

var dateFieldColumns = map[cases.DateField]string{
	cases.DateFieldCreated:  "cases.created_at",
	cases.DateFieldReceived: "cases.received_date",
	cases.DateFieldModified: "cases.modified_at",
	cases.DateFieldSolved:   "cases.solved_at",
}

// searchScopes composes the predicate for criteria plus its ordering.
func searchScopes(criteria cases.SearchCriteria) []func(*gorm.DB) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, 4)

	if criteria.IsComprehensive() {
		scopes = append(scopes, comprehensiveScope(criteria.Term))
	} else {
		scopes = append(scopes, fieldScope(criteria))
	}
	if criteria.Year != nil {
		scopes = append(scopes, yearScope(*criteria.Year, criteria.EffectiveDateField()))
	}
	scopes = append(scopes, orderBy(criteria.Ordering))

	return scopes
}

func comprehensiveScope(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		p := textnorm.ContainsPattern(term)
		// one argument per LIKE: five columns, one correspondence, two attachment
		return db.Where("("+predicatesFor(db).comprehensive+")", p, p, p, p, p, p, p, p)
	}
}

// fieldScope ANDs only the criteria that are set.
func fieldScope(c cases.SearchCriteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		preds := predicatesFor(db)
		for _, f := range []struct{ column, term string }{
			{"cases.customer_name", c.CustomerName},
			{"COALESCE(cases.subscriber_number, '')", c.SubscriberNumber},
			{"COALESCE(cases.address, '')", c.Address},
			{"COALESCE(cases.problem_description, '')", c.ProblemDescription},
			{"COALESCE(cases.actions_taken, '')", c.ActionsTaken},
		} {
			if !textnorm.IsBlank(f.term) {
				db = db.Where(preds.like(f.column), textnorm.ContainsPattern(f.term))
			}
		}

		if c.Status != nil {
			db = db.Where("cases.status = ?", c.Status.String())
		}
		if name := strings.TrimSpace(c.CategoryName); name != "" {
			db = db.Where("cases.category_id IN (SELECT ic.id FROM issue_categories ic WHERE ic.category_name = ?)", name)
		}
		if name := strings.TrimSpace(c.EmployeeName); name != "" {
			db = db.Where("(cases.created_by_id IN (SELECT e.id FROM employees e WHERE e.name = ?) OR "+
				"cases.modified_by_id IN (SELECT e.id FROM employees e WHERE e.name = ?))", name, name)
		}
		if !textnorm.IsBlank(c.CorrespondenceText) {
			db = db.Where(preds.correspondence, textnorm.ContainsPattern(c.CorrespondenceText))
		}
		if !textnorm.IsBlank(c.AttachmentText) {
			p := textnorm.ContainsPattern(c.AttachmentText)
			db = db.Where(preds.attachment, p, p)
		}
		return db
	}
}

// yearScope never matches a case whose selected date is null.
func yearScope(year int, field cases.DateField) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := dateFieldColumns[field]
		if !ok {
			column = dateFieldColumns[cases.DateFieldCreated]
		}
		start, end := biztime.YearRangeUTC(year)
		return db.Where(column+" IS NOT NULL AND "+column+" >= ? AND "+column+" < ?", start.UnixMilli(), end.UnixMilli())
	}
}

func keywordScope(keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		normalized := textnorm.Normalize(keyword)
		if normalized == "" {
			return db
		}
		p := textnorm.ContainsPattern(keyword)
		predicate := predicatesFor(db).keyword
		statuses := vo.StatusesMatching(normalized)
		if len(statuses) == 0 {
			return db.Where("("+predicate+")", p, p, p, p)
		}
		codes := make([]string, 0, len(statuses))
		for _, s := range statuses {
			codes = append(codes, s.String())
		}
		return db.Where("("+predicate+" OR cases.status IN ?)", p, p, p, p, codes)
	}
}

func orderBy(ordering cases.Ordering) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ordering == cases.OrderByNewest {
			return db.Order("cases.created_at DESC").Order("cases.id DESC")
		}
		// never modified cases sort as if modified at the epoch
		return db.Order("COALESCE(cases.modified_at, 0) DESC").
			Order("cases.created_at DESC").
			Order("cases.id DESC")
	}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
