// Package huhforms builds the interactive entry forms used by the
// dashboard.
package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/harithj/ascent/internal/models"
)

// ProjectFormValues holds the bound form fields for project entry.
type ProjectFormValues struct {
	Name         string
	Year         string
	Pillar       string
	MainCategory string
	SubCategory  string
	Dimension    string
	StartDate    string
	EndDate      string
	Status       string
	Manager      string
}

// Fields converts the completed form into registry entry fields.
func (v *ProjectFormValues) Fields() models.Fields {
	return models.Fields{
		Name:         v.Name,
		Year:         v.Year,
		Pillar:       v.Pillar,
		MainCategory: v.MainCategory,
		SubCategory:  v.SubCategory,
		Dimension:    v.Dimension,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Status:       v.Status,
		Manager:      v.Manager,
	}
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	opts = append(opts, huh.NewOption("(none)", ""))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func subCategoryOptions() []huh.Option[string] {
	var all []string
	for _, main := range models.MainCategories {
		all = append(all, models.SubCategories[main]...)
	}
	return stringOptions(all)
}

// CreateProjectForm creates a huh form for entering a new project.
// Managers are offered from the given usernames; taxonomy fields offer
// the fixed classification values.
func CreateProjectForm(values *ProjectFormValues, managers []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Project Name").
				Placeholder("Enter project name...").
				Value(&values.Name),
			huh.NewSelect[string]().
				Key("year").
				Title("Year").
				Options(stringOptions(models.Years)...).
				Value(&values.Year),
			huh.NewInput().
				Key("pillar").
				Title("Strategic Pillar").
				Value(&values.Pillar),
			huh.NewSelect[string]().
				Key("category").
				Title("Target Main Category").
				Options(stringOptions(models.MainCategories)...).
				Value(&values.MainCategory),
			huh.NewSelect[string]().
				Key("subcategory").
				Title("Target Sub Category").
				Options(subCategoryOptions()...).
				Value(&values.SubCategory),
			huh.NewSelect[string]().
				Key("dimension").
				Title("Target Dimension").
				Options(stringOptions(models.Dimensions)...).
				Value(&values.Dimension),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("start").
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Value(&values.StartDate),
			huh.NewInput().
				Key("end").
				Title("End Date").
				Placeholder("YYYY-MM-DD").
				Value(&values.EndDate),
			huh.NewSelect[string]().
				Key("status").
				Title("Task Status").
				Options(stringOptions(models.StatusOrder)...).
				Value(&values.Status),
			huh.NewSelect[string]().
				Key("manager").
				Title("Manager").
				Options(stringOptions(managers)...).
				Value(&values.Manager),
		),
	)
}
