package model

const Uncategorized = "Uncategorized"

// Categories is the closed set the classifier is allowed to answer with.
var Categories = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy & Eggs",
	"Bakery",
	"Pantry",
	"Frozen",
	"Beverages",
	"Household & Personal",
	"Snacks",
	"Other",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ClassificationEntry maps a raw flyer name to its cleaned-up form.
// OriginalName is the immutable cache key.
type ClassificationEntry struct {
	OriginalName string `json:"original_name"`
	CleanName    string `json:"clean_name"`
	Category     string `json:"category"`
	IsDeal       bool   `json:"is_deal"`
}
