package domain

// Action names a gated operation. Access control here is two boolean role
// predicates over the account record, not a policy engine.
type Action string

const (
	ActionPlaceOrder       Action = "order:place"
	ActionViewOrderHistory Action = "order:history"
	ActionRateOrder        Action = "order:rate"
	ActionViewBuyerDetail  Action = "order:buyer-detail"

	ActionManageOrders   Action = "order:manage"
	ActionPublishProduct Action = "product:publish"
	ActionViewStatistics Action = "statistics:view"
)

var sellerActions = map[Action]bool{
	ActionManageOrders:   true,
	ActionPublishProduct: true,
	ActionViewStatistics: true,
}

var buyerActions = map[Action]bool{
	ActionPlaceOrder:       true,
	ActionViewOrderHistory: true,
	ActionRateOrder:        true,
	ActionViewBuyerDetail:  true,
}

// Allowed is the single capability check for the whole API: sellers get
// seller actions, buyers get buyer actions.
func Allowed(isSeller bool, action Action) bool {
	if isSeller {
		return sellerActions[action]
	}
	return buyerActions[action]
}
