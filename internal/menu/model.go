package menu

type Category string

const (
	CategoryCoffee  Category = "coffee"
	CategoryCookies Category = "cookies"
	CategorySides   Category = "sides"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryCookies, CategorySides:
		return true
	}
	return false
}

// Item is one sellable catalog entry. Price is an integer amount in the
// smallest currency unit.
type Item struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Available   bool     `json:"available"`
}

type NewItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Available   bool     `json:"available"`
}

type UpdateItemInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Category    *Category `json:"category,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Available   *bool     `json:"available,omitempty"`
}

// ListFilter narrows a wholesale catalog fetch. Matching happens in memory:
// the store hands back the whole collection and the service filters it.
type ListFilter struct {
	Category Category
	Search   string
}
