package domain

// Intent is the closed set of user goals the sales assistant recognizes
type Intent int

const (
	// IntentUnknown - Nothing matched
	IntentUnknown Intent = iota
	// IntentGoodbye - Leaving the conversation
	IntentGoodbye
	// IntentThank - Thanking the assistant
	IntentThank
	// IntentResetConversation - Start over
	IntentResetConversation
	// IntentGreet - Greeting
	IntentGreet
	// IntentLogin - Asking how to log in
	IntentLogin
	// IntentCheckout - Place the order
	IntentCheckout
	// IntentViewCart - Show cart contents
	IntentViewCart
	// IntentRemoveFromCart - Remove a product from the cart
	IntentRemoveFromCart
	// IntentAddToCart - Add a product to the cart
	IntentAddToCart
	// IntentProductDetails - Describe one product
	IntentProductDetails
	// IntentSearchProduct - Search or browse the catalog
	IntentSearchProduct
)

var intentLabels = map[Intent]string{
	IntentUnknown:           "unknown",
	IntentGoodbye:           "goodbye",
	IntentThank:             "thank",
	IntentResetConversation: "reset_conversation",
	IntentGreet:             "greet",
	IntentLogin:             "login",
	IntentCheckout:          "checkout",
	IntentViewCart:          "view_cart",
	IntentRemoveFromCart:    "remove_from_cart",
	IntentAddToCart:         "add_to_cart",
	IntentProductDetails:    "product_details",
	IntentSearchProduct:     "search_product",
}

func (i Intent) String() string {
	if label, ok := intentLabels[i]; ok {
		return label
	}
	return intentLabels[IntentUnknown]
}

// Entities are the values extracted from one query. A nil field was not found;
// a non-nil empty ProductName asks for the whole catalog.
type Entities struct {
	ProductName *string
	ProductID   *string
	Category    *string
	Brand       *string
	MinPrice    *float64
	MaxPrice    *float64
}

// HasSearchFilter reports whether any catalog filter was extracted
func (e Entities) HasSearchFilter() bool {
	return (e.ProductName != nil && *e.ProductName != "") ||
		(e.Category != nil && *e.Category != "") ||
		(e.Brand != nil && *e.Brand != "") ||
		e.MinPrice != nil ||
		e.MaxPrice != nil
}
