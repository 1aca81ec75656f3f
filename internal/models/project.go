package models

// Project is the central registry record: one transformation initiative
// with its classification, schedule, ownership, and progress fields.
// Dates are stored as text ("YYYY-MM-DD" or whatever the import source
// provided); blank means no date. The Name is a soft business key used
// for import reconciliation, not enforced unique at the storage level.
type Project struct {
	ID             int
	Name           string
	Year           string
	Pillar         string // strategic pillar, free text
	MainCategory   string
	SubCategory    string
	Dimension      string // one of the sixteen assessment dimensions
	ActionPlan     string
	StartDate      string // "YYYY-MM-DD" or "" or raw unparseable text
	EndDate        string
	Captain        string
	Leaders        string
	Owners         string
	Status         string
	CompletionRate float64 // 0-100
	Comments       string
	Remark         string
	Manager        string
}

// Fields holds every mutable project attribute, used for create and
// full-replace update calls. Identity (ID) is never part of it.
type Fields struct {
	Name           string
	Year           string
	Pillar         string
	MainCategory   string
	SubCategory    string
	Dimension      string
	ActionPlan     string
	StartDate      string
	EndDate        string
	Captain        string
	Leaders        string
	Owners         string
	Status         string
	CompletionRate float64
	Comments       string
	Remark         string
	Manager        string
}

// FieldsOf extracts the mutable fields of an existing project.
func FieldsOf(p *Project) Fields {
	return Fields{
		Name:           p.Name,
		Year:           p.Year,
		Pillar:         p.Pillar,
		MainCategory:   p.MainCategory,
		SubCategory:    p.SubCategory,
		Dimension:      p.Dimension,
		ActionPlan:     p.ActionPlan,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Captain:        p.Captain,
		Leaders:        p.Leaders,
		Owners:         p.Owners,
		Status:         p.Status,
		CompletionRate: p.CompletionRate,
		Comments:       p.Comments,
		Remark:         p.Remark,
		Manager:        p.Manager,
	}
}
