package domain

import "time"

type ProductCondition string

const (
	ConditionNew      ProductCondition = "new"
	ConditionLikeNew  ProductCondition = "like_new"
	ConditionUsed     ProductCondition = "used"
	ConditionForParts ProductCondition = "for_parts"
)

var conditionLabels = map[ProductCondition]string{
	ConditionNew:      "New",
	ConditionLikeNew:  "Like new",
	ConditionUsed:     "Second hand",
	ConditionForParts: "For parts",
}

// Conditions lists every product condition with its display label, in a
// stable order for dropdowns.
func Conditions() []ConditionOption {
	ordered := []ProductCondition{ConditionNew, ConditionLikeNew, ConditionUsed, ConditionForParts}
	out := make([]ConditionOption, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, ConditionOption{Value: c, Label: conditionLabels[c]})
	}
	return out
}

func (c ProductCondition) Valid() bool {
	_, ok := conditionLabels[c]
	return ok
}

func (c ProductCondition) Label() string {
	return conditionLabels[c]
}

type ConditionOption struct {
	Value ProductCondition `json:"value"`
	Label string           `json:"label"`
}

type Category struct {
	ID          string
	Name        string
	Description string
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Condition   ProductCondition
	Location    string
	Stock       int
	Sold        bool
	SellerID    string
	CategoryID  string
	CreatedAt   time.Time

	Seller   *User
	Category *Category
	Images   []ProductImage
}

// FirstImageURL returns the URL of the first attached image, or "".
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

type ProductImage struct {
	ID        string
	ProductID string
	URL       string
}

// SellerSales is one row of the leaderboard aggregate: delivered orders and
// revenue per seller. Computed on read, never maintained incrementally.
type SellerSales struct {
	SellerID   string
	TotalSales int64
	Revenue    float64
}
