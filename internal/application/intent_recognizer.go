package application

import (
	"regexp"
	"strconv"
	"strings"

	"shopbot/internal/domain"
)

// Keyword sets per intent. Matching is substring containment on the lower-cased query.
var (
	goodbyeKeywords        = []string{"bye", "goodbye", "exit", "quit", "see ya"}
	thankKeywords          = []string{"thank", "thanks", "thank you"}
	resetKeywords          = []string{"reset", "start over", "clear chat", "new conversation"}
	greetKeywords          = []string{"hello", "hi", "hey", "hola"}
	loginKeywords          = []string{"login", "log in", "sign in"}
	checkoutKeywords       = []string{"checkout", "place order", "pay now", "buy now"}
	viewCartKeywords       = []string{"what's in my cart", "view cart", "show my cart", "my cart", "cart"}
	removeFromCartKeywords = []string{"remove from cart", "delete from cart", "take out of cart", "remove this"}
	addToCartKeywords      = []string{"add to cart", "buy", "add this", "put in cart"}
	productDetailsKeywords = []string{"details about", "tell me about", "info on", "describe", "what about"}
	searchProductKeywords  = []string{
		"search", "find", "look for", "get me", "show me", "browse",
		"show", "list", "display", "products", "items", "available",
	}
	catalogKeywords = []string{"products", "items"}
)

var (
	productNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`search for (.+)`),
		regexp.MustCompile(`look for (.+)`),
		regexp.MustCompile(`find (.+)`),
		regexp.MustCompile(`show me (.+)`),
		regexp.MustCompile(`browse (.+)`),
		regexp.MustCompile(`what (?:are|do you have) (?:about|on)? (.+)`),
		regexp.MustCompile(`get me (.+)`),
	}
	categoryPattern = regexp.MustCompile(`category\s*(\w+)`)
	brandPattern    = regexp.MustCompile(`brand\s*(\w+)`)

	maxPricePattern   = regexp.MustCompile(`(?:under|below)\s*\$?(\d+(?:\.\d+)?)|\$?(\d+(?:\.\d+)?)\s*or less`)
	minPricePattern   = regexp.MustCompile(`(?:over|above)\s*\$?(\d+(?:\.\d+)?)|\$?(\d+(?:\.\d+)?)\s*or more`)
	priceRangePattern = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s*(?:to|and)\s*\$?(\d+(?:\.\d+)?)`)
)

// intentRule binds an intent to its keywords and its entity extractor.
type intentRule struct {
	intent   domain.Intent
	keywords []string
	extract  func(query string, sc domain.SessionContext, entities *domain.Entities)
}

// intentPriority is evaluated top to bottom; the first rule whose keywords
// occur in the query wins.
var intentPriority = []intentRule{
	{intent: domain.IntentGoodbye, keywords: goodbyeKeywords},
	{intent: domain.IntentThank, keywords: thankKeywords},
	{intent: domain.IntentResetConversation, keywords: resetKeywords},
	{intent: domain.IntentGreet, keywords: greetKeywords},
	{intent: domain.IntentLogin, keywords: loginKeywords},
	{intent: domain.IntentCheckout, keywords: checkoutKeywords},
	{intent: domain.IntentViewCart, keywords: viewCartKeywords},
	{intent: domain.IntentRemoveFromCart, keywords: removeFromCartKeywords, extract: extractRemoveFromCart},
	{intent: domain.IntentAddToCart, keywords: addToCartKeywords, extract: extractAddToCart},
	{intent: domain.IntentProductDetails, keywords: productDetailsKeywords, extract: extractProductDetails},
	{intent: domain.IntentSearchProduct, keywords: searchProductKeywords, extract: extractSearchProduct},
}

// RecognizeIntent classifies a raw query and extracts its entities. The session
// context only feeds the fallbacks for missing product references; it is not
// modified.
func RecognizeIntent(query string, sc domain.SessionContext) (domain.Intent, domain.Entities) {
	lowerQuery := strings.ToLower(query)
	var entities domain.Entities

	for _, rule := range intentPriority {
		if !containsAny(lowerQuery, rule.keywords) {
			continue
		}
		if rule.extract != nil {
			rule.extract(lowerQuery, sc, &entities)
		}
		return rule.intent, entities
	}
	return domain.IntentUnknown, entities
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func extractRemoveFromCart(query string, sc domain.SessionContext, entities *domain.Entities) {
	for _, kw := range removeFromCartKeywords {
		_, after, found := strings.Cut(query, kw)
		if !found {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(after), "from cart", ""))
		if name != "" {
			entities.ProductName = &name
			break
		}
	}
	if entities.ProductName == nil && sc.LastViewedProductID != nil {
		entities.ProductID = stringPtr(*sc.LastViewedProductID)
	}
}

func extractAddToCart(query string, sc domain.SessionContext, entities *domain.Entities) {
	for _, kw := range addToCartKeywords {
		before, after, found := strings.Cut(query, kw)
		if !found {
			continue
		}
		var name string
		if strings.Contains(before, "add ") {
			name = strings.TrimSpace(strings.ReplaceAll(before, "add ", ""))
		} else {
			name = strings.TrimSpace(after)
		}
		if name != "" {
			entities.ProductName = &name
			break
		}
	}
	if entities.ProductName == nil {
		entities.ProductID = fallbackProductID(sc)
	}
}

func extractProductDetails(query string, sc domain.SessionContext, entities *domain.Entities) {
	for _, kw := range productDetailsKeywords {
		if _, after, found := strings.Cut(query, kw); found {
			if name := strings.TrimSpace(after); name != "" {
				entities.ProductName = &name
			}
			break
		}
	}
	if entities.ProductName == nil {
		entities.ProductID = fallbackProductID(sc)
	}
}

func extractSearchProduct(query string, _ domain.SessionContext, entities *domain.Entities) {
	for _, pattern := range productNamePatterns {
		if match := pattern.FindStringSubmatch(query); match != nil {
			entities.ProductName = stringPtr(strings.TrimSpace(match[1]))
			break
		}
	}
	if entities.ProductName == nil && containsAny(query, catalogKeywords) {
		entities.ProductName = stringPtr("")
	}

	if match := categoryPattern.FindStringSubmatch(query); match != nil {
		entities.Category = stringPtr(match[1])
	}
	if match := brandPattern.FindStringSubmatch(query); match != nil {
		entities.Brand = stringPtr(match[1])
	}

	extractPriceRange(query, entities)
}

// extractPriceRange runs the max, min and range patterns in that order. Each
// match overwrites the bounds it sets, so a range wins over "under"/"over".
func extractPriceRange(query string, entities *domain.Entities) {
	if match := maxPricePattern.FindStringSubmatch(query); match != nil {
		if price, ok := parsePrice(firstGroup(match)); ok {
			entities.MaxPrice = &price
		}
	}
	if match := minPricePattern.FindStringSubmatch(query); match != nil {
		if price, ok := parsePrice(firstGroup(match)); ok {
			entities.MinPrice = &price
		}
	}
	if match := priceRangePattern.FindStringSubmatch(query); match != nil {
		low, lowOK := parsePrice(match[1])
		high, highOK := parsePrice(match[2])
		if lowOK && highOK {
			entities.MinPrice = &low
			entities.MaxPrice = &high
		}
	}
}

func firstGroup(match []string) string {
	for _, group := range match[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}

func parsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// fallbackProductID picks the last viewed product, else the first product of
// the last search.
func fallbackProductID(sc domain.SessionContext) *string {
	if sc.LastViewedProductID != nil {
		return stringPtr(*sc.LastViewedProductID)
	}
	if len(sc.LastSearchedProducts) > 0 {
		return stringPtr(sc.LastSearchedProducts[0].ID)
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}
