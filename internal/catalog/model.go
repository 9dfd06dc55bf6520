package catalog

import "time"

// Book is one entry in the library fund.
type Book struct {
	ID               string    `yaml:"id"`
	Title            string    `yaml:"title"`
	Author           string    `yaml:"author"`
	LiteratureType   string    `yaml:"literature_type"`
	Department       string    `yaml:"department,omitempty"`
	Year             string    `yaml:"year,omitempty"`
	Place            string    `yaml:"place,omitempty"`
	Condition        string    `yaml:"condition,omitempty"`
	AuthorPermission string    `yaml:"author_permission,omitempty"`
	Affiliation      string    `yaml:"affiliation,omitempty"`
	Link             string    `yaml:"link"`
	CreatedDate      string    `yaml:"created_date,omitempty"` // YYYY-MM-DD, set by the add form
	AddedBy          string    `yaml:"added_by,omitempty"`
	CreatedAt        time.Time `yaml:"created_at,omitempty"` // store-assigned server timestamp
}

// EffectiveDepartment maps an unset department to the "Other" sentinel.
func (b Book) EffectiveDepartment() string {
	if b.Department == "" {
		return DepartmentOther
	}
	return b.Department
}

// EffectiveAffiliation maps an unset affiliation to the staff default.
func (b Book) EffectiveAffiliation() string {
	if b.Affiliation == "" {
		return AffiliationStaff
	}
	return b.Affiliation
}

// Category is a user-defined literature type merged into the fixed set
// when building the "other" catalog grid.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Patch is a partial update applied to an existing book. Nil fields are
// left untouched.
type Patch struct {
	Title            *string
	Author           *string
	LiteratureType   *string
	Department       *string
	Year             *string
	Place            *string
	Condition        *string
	AuthorPermission *string
	Affiliation      *string
	Link             *string
}
