package router

// Log prefixes
const (
	LogPrefixNew      = "internal.router.New"
	LogPrefixClassify = "internal.router.Classify"
)

// Route names
const (
	RouteFAQ     = "faq"
	RouteSQL     = "sql"
	RouteUnknown = "unknown"
)

// DefaultThreshold is the minimum winning similarity for a named route.
const DefaultThreshold = 0.25

// DefaultRoutes returns the built-in route table. The slice is fresh on every call.
func DefaultRoutes() []Route {
	return []Route{
		{
			Name: RouteFAQ,
			Examples: []string{
				"What is the return policy of the products?",
				"Do I get discount with the HDFC credit card?",
				"How can I track my order?",
				"What payment methods are accepted?",
				"How long does it take to process a refund?",
			},
		},
		{
			Name: RouteSQL,
			Examples: []string{
				"I want to buy nike shoes that have 50% discount.",
				"Are there any shoes under Rs. 3000?",
				"Do you have formal shoes in size 9?",
				"Are there any Puma shoes on sale?",
				"What is the price of puma running shoes?",
			},
		},
	}
}
