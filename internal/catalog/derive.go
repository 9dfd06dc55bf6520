package catalog

import (
	"sort"
	"time"
)

// GroupCategoryCounts counts books per literature type, optionally scoped
// to one department. Every fixed literature type is present in the result
// even at zero; values outside the fixed set are counted under the
// TypeOther bucket, which appears only when nonzero.
func GroupCategoryCounts(books []Book, department string) map[string]int {
	counts := make(map[string]int, len(LiteratureTypes)+1)
	for _, t := range LiteratureTypes {
		counts[t] = 0
	}
	for _, b := range books {
		if department != "" && b.EffectiveDepartment() != department {
			continue
		}
		if KnownType(b.LiteratureType) {
			counts[b.LiteratureType]++
		} else {
			counts[TypeOther]++
		}
	}
	return counts
}

// DepartmentSummary describes one department tile on the department grid.
type DepartmentSummary struct {
	Department string
	Count      int
	MostRecent *Book // greatest CreatedDate, ties by greatest ID; nil when empty
}

// ListDepartments returns one summary per fixed department, in the fixed
// declaration order.
func ListDepartments(books []Book) []DepartmentSummary {
	out := make([]DepartmentSummary, 0, len(Departments))
	for _, dep := range Departments {
		s := DepartmentSummary{Department: dep}
		for i := range books {
			if books[i].Department != dep {
				continue
			}
			s.Count++
			if s.MostRecent == nil || newerRecord(books[i], *s.MostRecent) {
				s.MostRecent = &books[i]
			}
		}
		out = append(out, s)
	}
	return out
}

func newerRecord(a, b Book) bool {
	if a.CreatedDate != b.CreatedDate {
		return a.CreatedDate > b.CreatedDate
	}
	return a.ID > b.ID
}

// AffiliationCounts splits the collection by author affiliation.
type AffiliationCounts struct {
	Staff    int
	External int
}

// Stats is the aggregate snapshot behind the dashboard and the overall
// statistics screen.
type Stats struct {
	Total            int
	ByLiteratureType map[string]int // every fixed type, zeroes included
	ByDepartment     map[string]int // every fixed department plus Other
	ByAffiliation    AffiliationCounts
	Contributors     int // distinct staff members that added at least one book
}

// AggregateStats derives Stats from the full collection.
func AggregateStats(books []Book) Stats {
	s := Stats{
		Total:            len(books),
		ByLiteratureType: make(map[string]int, len(LiteratureTypes)+1),
		ByDepartment:     make(map[string]int, len(Departments)+1),
	}
	for _, t := range LiteratureTypes {
		s.ByLiteratureType[t] = 0
	}
	for _, dep := range Departments {
		s.ByDepartment[dep] = 0
	}
	s.ByDepartment[DepartmentOther] = 0

	staff := make(map[string]struct{})
	for _, b := range books {
		if KnownType(b.LiteratureType) {
			s.ByLiteratureType[b.LiteratureType]++
		} else {
			s.ByLiteratureType[TypeOther]++
		}
		dep := b.EffectiveDepartment()
		if !KnownDepartment(dep) {
			dep = DepartmentOther
		}
		s.ByDepartment[dep]++
		switch b.EffectiveAffiliation() {
		case AffiliationExternal:
			s.ByAffiliation.External++
		default:
			s.ByAffiliation.Staff++
		}
		if b.AddedBy != "" {
			staff[b.AddedBy] = struct{}{}
		}
	}
	s.Contributors = len(staff)
	return s
}

// GrowthPoint is one calendar day in the fund growth series.
type GrowthPoint struct {
	Date  string // YYYY-MM-DD
	Added int
	Total int // running sum up to and including this day
}

// DailyGrowth groups books by the UTC calendar date of their server
// timestamp, ascending, with a cumulative running total. Books without a
// timestamp are excluded. Pure: identical input yields identical output.
func DailyGrowth(books []Book) []GrowthPoint {
	perDay := make(map[string]int)
	for _, b := range books {
		if b.CreatedAt.IsZero() {
			continue
		}
		perDay[b.CreatedAt.UTC().Format("2006-01-02")]++
	}
	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]GrowthPoint, 0, len(dates))
	total := 0
	for _, d := range dates {
		total += perDay[d]
		out = append(out, GrowthPoint{Date: d, Added: perDay[d], Total: total})
	}
	return out
}

// AddedOn counts books whose server timestamp falls on the same UTC
// calendar day as ref.
func AddedOn(books []Book, ref time.Time) int {
	day := ref.UTC().Format("2006-01-02")
	n := 0
	for _, b := range books {
		if !b.CreatedAt.IsZero() && b.CreatedAt.UTC().Format("2006-01-02") == day {
			n++
		}
	}
	return n
}

// StaffActivity summarizes one staff member's work for the staff room.
type StaffActivity struct {
	Name        string
	Today       int
	AllTime     int
	TodayByType map[string]int // only types with nonzero counts
}

// StaffDailyActivity reports per-staff activity relative to ref (supplied
// by the caller, not captured from the wall clock). Ordered descending by
// today's count; ties keep the roster order.
func StaffDailyActivity(books []Book, staffNames []string, ref time.Time) []StaffActivity {
	day := ref.UTC().Format("2006-01-02")
	out := make([]StaffActivity, 0, len(staffNames))
	for _, name := range staffNames {
		a := StaffActivity{Name: name, TodayByType: make(map[string]int)}
		for _, b := range books {
			if b.AddedBy != name {
				continue
			}
			a.AllTime++
			if b.CreatedAt.IsZero() || b.CreatedAt.UTC().Format("2006-01-02") != day {
				continue
			}
			a.Today++
			a.TodayByType[b.LiteratureType]++
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Today > out[j].Today
	})
	return out
}
