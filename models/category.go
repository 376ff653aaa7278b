package models

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories is the canonical category table. Products reference these by id;
// anything outside the table displays as "Others".
var Categories = []Category{
	{ID: 1, Name: "Fruits"},
	{ID: 2, Name: "Vegetables"},
	{ID: 3, Name: "Dairy"},
	{ID: 4, Name: "Plants"},
	{ID: 5, Name: "Others"},
}

const DefaultCategoryName = "Others"

func CategoryName(id int) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return DefaultCategoryName
}

func CategoryIDByName(name string) (int, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c.ID, true
		}
	}
	return 0, false
}
