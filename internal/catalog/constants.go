package catalog

// Departments is the fixed set of institute departments a book can be
// attributed to. Counting and navigation compare against these values
// case-sensitively.
var Departments = []string{
	"Arxitektura",
	"Axborot texnologiyalari",
	"Energetika",
	"Iqtisodiyot",
	"Kimyo texnologiyasi",
	"Mexanika",
	"Qurilish",
	"Transport",
}

// DepartmentOther is the sentinel for books that belong to no department.
const DepartmentOther = "Other"

// LiteratureTypes is the fixed set of category labels. User-defined
// categories extend this set at navigation time only.
var LiteratureTypes = []string{
	"Darslik",
	"O'quv qo'llanma",
	"Monografiya",
	"Risola",
	"Ma'ruzalar matni",
	"Lug'at",
	"Ilmiy maqola",
}

// TypeOther is the catch-all bucket for literature types outside the
// fixed set and the user-defined categories.
const TypeOther = "Other"

// Author affiliation values. An empty affiliation on a record reads as
// AffiliationStaff.
const (
	AffiliationStaff    = "staff"
	AffiliationExternal = "external"
)

// Author permission values.
const (
	PermissionGranted    = "granted"
	PermissionNotGranted = "not-granted"
)

// departmentSet and typeSet back the O(1) membership checks in the
// derivation functions.
var (
	departmentSet = toSet(Departments)
	typeSet       = toSet(LiteratureTypes)
)

func toSet(values []string) map[string]struct{} {
	s := make(map[string]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// KnownDepartment reports whether dep is one of the fixed departments.
func KnownDepartment(dep string) bool {
	_, ok := departmentSet[dep]
	return ok
}

// KnownType reports whether t is one of the fixed literature types.
func KnownType(t string) bool {
	_, ok := typeSet[t]
	return ok
}

// GeneralTypes returns the literature types shown in the "other" catalog
// grid: the fixed set minus the two department-bound types, merged with
// the user-defined categories, deduplicated and sorted.
func GeneralTypes(custom []Category) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range LiteratureTypes {
		if t == "Darslik" || t == "O'quv qo'llanma" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, c := range custom {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c.Name)
	}
	sortStrings(out)
	return out
}
