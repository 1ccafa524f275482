package template

import "pictoplan/internal/models"

// Builtin returns the shipped template set. Each item carries the ARASAAC
// pictogram id used to fetch its image on first use.
func Builtin() []models.Template {
	return []models.Template{
		{
			Name:    "School Day",
			BuiltIn: true,
			Items: []models.TemplateItem{
				{Label: "Wake up", TimeStr: "06:30", Duration: 15, Category: models.CategoryMorning, ArasaacID: 8988},
				{Label: "Breakfast", TimeStr: "06:45", Duration: 20, Category: models.CategoryMeals, ArasaacID: 4625},
				{Label: "Get dressed", TimeStr: "07:05", Duration: 15, Category: models.CategoryMorning, ArasaacID: 2781},
				{Label: "Brush teeth", TimeStr: "07:20", Duration: 10, Category: models.CategoryHygiene, ArasaacID: 2326},
				{Label: "Go to school", TimeStr: "07:30", Duration: 30, Category: models.CategoryTransport, ArasaacID: 3082},
				{Label: "School", TimeStr: "08:00", Duration: 360, Category: models.CategorySchool, ArasaacID: 3082},
				{Label: "Lunch", TimeStr: "11:30", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4609},
				{Label: "Come home", TimeStr: "14:00", Duration: 30, Category: models.CategoryTransport, ArasaacID: 6964},
				{Label: "Snack", TimeStr: "14:30", Duration: 15, Category: models.CategoryMeals, ArasaacID: 4694},
				{Label: "Play", TimeStr: "14:45", Duration: 60, Category: models.CategoryPlay, ArasaacID: 11653},
				{Label: "Dinner", TimeStr: "17:30", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4592},
				{Label: "Evening routine", TimeStr: "19:00", Duration: 30, Category: models.CategoryEvening, ArasaacID: 6942},
				{Label: "Brush teeth", TimeStr: "19:30", Duration: 10, Category: models.CategoryHygiene, ArasaacID: 2326},
				{Label: "Bedtime", TimeStr: "19:45", Duration: 15, Category: models.CategoryEvening, ArasaacID: 6027},
			},
		},
		{
			Name:    "Weekend",
			BuiltIn: true,
			Items: []models.TemplateItem{
				{Label: "Wake up", TimeStr: "08:00", Duration: 15, Category: models.CategoryMorning, ArasaacID: 8988},
				{Label: "Breakfast", TimeStr: "08:15", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4625},
				{Label: "Get dressed", TimeStr: "08:45", Duration: 15, Category: models.CategoryMorning, ArasaacID: 2781},
				{Label: "Play", TimeStr: "09:00", Duration: 120, Category: models.CategoryPlay, ArasaacID: 11653},
				{Label: "Lunch", TimeStr: "12:00", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4609},
				{Label: "Rest", TimeStr: "12:30", Duration: 60, Category: models.CategoryRest, ArasaacID: 3299},
				{Label: "Play", TimeStr: "14:00", Duration: 120, Category: models.CategoryPlay, ArasaacID: 11653},
				{Label: "Snack", TimeStr: "16:00", Duration: 15, Category: models.CategoryMeals, ArasaacID: 4694},
				{Label: "Dinner", TimeStr: "17:30", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4592},
				{Label: "Evening routine", TimeStr: "19:00", Duration: 30, Category: models.CategoryEvening, ArasaacID: 6942},
				{Label: "Bedtime", TimeStr: "20:00", Duration: 15, Category: models.CategoryEvening, ArasaacID: 6027},
			},
		},
		{
			Name:    "Holiday",
			BuiltIn: true,
			Items: []models.TemplateItem{
				{Label: "Wake up", TimeStr: "08:30", Duration: 15, Category: models.CategoryMorning, ArasaacID: 8988},
				{Label: "Breakfast", TimeStr: "08:45", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4625},
				{Label: "Get dressed", TimeStr: "09:15", Duration: 15, Category: models.CategoryMorning, ArasaacID: 2781},
				{Label: "Play", TimeStr: "09:30", Duration: 120, Category: models.CategoryPlay, ArasaacID: 11653},
				{Label: "Lunch", TimeStr: "12:00", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4609},
				{Label: "Rest", TimeStr: "12:30", Duration: 60, Category: models.CategoryRest, ArasaacID: 3299},
				{Label: "Play", TimeStr: "14:00", Duration: 180, Category: models.CategoryPlay, ArasaacID: 11653},
				{Label: "Dinner", TimeStr: "17:30", Duration: 30, Category: models.CategoryMeals, ArasaacID: 4592},
				{Label: "Evening routine", TimeStr: "19:30", Duration: 30, Category: models.CategoryEvening, ArasaacID: 6942},
				{Label: "Bedtime", TimeStr: "20:30", Duration: 15, Category: models.CategoryEvening, ArasaacID: 6027},
			},
		},
	}
}
