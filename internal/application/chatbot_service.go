package application

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Assistant replies
const (
	greetReply          = "Hello! I'm your shopping assistant. How can I help you today?"
	thankReply          = "You're welcome! Let me know if you need anything else."
	goodbyeReply        = "Goodbye! Happy shopping!"
	resetReply          = "Okay, I've reset our conversation. What would you like to do now?"
	unknownReply        = "I'm not sure how to help with that. Can you rephrase or ask about products, cart, or checkout?"
	alreadyLoggedInText = "You are already logged in as %s."
	loginHintReply      = "To log in, please use the login form on the page. For this demo, we assume 'testuser' and 'password'."

	catalogResultsReply = "Here are some products from our catalog:"
	searchResultsText   = "Here are some results for %s:"
	searchClarifyReply  = "What product are you looking for? You can search by name, category, brand, or price range."
	noResultsReply      = "Sorry, I couldn't find any products matching your criteria."
	searchFailedReply   = "An error occurred while searching for products."

	detailsNotFoundReply = "Sorry, I couldn't find details for that product."

	addLoginReply     = "Please log in first to add items to your cart."
	addClarifyReply   = "Which product would you like to add to your cart? Please specify a name or ID."
	addFailedReply    = "Failed to add product to cart."
	removeLoginReply  = "Please log in first to modify your cart."
	removeClarify     = "Which product would you like to remove from your cart? Please specify a name or ID."
	removeFailedReply = "Failed to remove product from cart."

	viewCartLoginReply  = "Please log in first to view your cart."
	cartEmptyReply      = "Your cart is empty."
	viewCartFailedReply = "An error occurred while viewing your cart."

	checkoutLoginReply  = "Please log in first to checkout."
	checkoutFailedReply = "Failed to process checkout. Your cart might be empty or an error occurred."

	noQueryMessage = "No query provided"
)

// ChatbotService struct - Application service implementing the sales assistant use cases
type ChatbotService struct {
	shopClient   output.ShopClient
	sessionStore output.SessionStore
}

// NewChatbotService func - Creates new sales assistant service
func NewChatbotService(shopClient output.ShopClient, sessionStore output.SessionStore) *ChatbotService {
	return &ChatbotService{
		shopClient:   shopClient,
		sessionStore: sessionStore,
	}
}

// Chat func - Use case: resolve the caller's session and answer one query
func (s *ChatbotService) Chat(ctx context.Context, request domain.ChatRequest) (*domain.ChatResponse, error) {
	if strings.TrimSpace(request.Query) == "" {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, noQueryMessage)
	}

	session, err := s.sessionStore.GetSession(request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		session, err = s.sessionStore.CreateSession(request.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		logrus.Infof("Started chat session %s for user %s", session.ID, session.UserID)
	}

	session.Lock()
	defer session.Unlock()

	applyIdentity(session, request)

	return s.handleQuery(ctx, request.Query, session), nil
}

// applyIdentity binds the session to the shop user named by the request
func applyIdentity(session *domain.ChatSession, request domain.ChatRequest) {
	if request.UserID != "" && request.UserID != domain.GuestUserID {
		if session.UserID == domain.GuestUserID {
			session.UserID = request.UserID
		}
		if session.UserID == request.UserID {
			session.Context.UserID = stringPtr(request.UserID)
		}
	}

	if request.LoggedInUserID != "" {
		if session.UserID == domain.GuestUserID {
			session.UserID = request.LoggedInUserID
		}
		session.Context.LoggedIn = true
		session.Context.UserID = stringPtr(request.LoggedInUserID)
		session.Context.Username = stringPtr(request.LoggedInUsername)
	}

	if request.SessionToken != "" {
		session.Context.SessionToken = stringPtr(request.SessionToken)
	}
}

// HandleQuery func - Use case: answer one query within an existing session.
// Turns of concurrent calls on the same session never interleave.
func (s *ChatbotService) HandleQuery(ctx context.Context, query string, session *domain.ChatSession) *domain.ChatResponse {
	session.Lock()
	defer session.Unlock()
	return s.handleQuery(ctx, query, session)
}

// handleQuery expects the session lock to be held
func (s *ChatbotService) handleQuery(ctx context.Context, query string, session *domain.ChatSession) *domain.ChatResponse {
	session.AddMessage(domain.SenderUser, query)
	s.logTurn(ctx, session.ID, domain.SenderUser, query)

	intent, entities := RecognizeIntent(query, session.Context)
	logrus.Debugf("Session %s: intent=%s", session.ID, intent)

	text, products := s.dispatch(ctx, intent, entities, query, session)

	session.AddMessage(domain.SenderChatbot, text)
	s.logTurn(ctx, session.ID, domain.SenderChatbot, text)

	return &domain.ChatResponse{
		Text:      text,
		Products:  products,
		SessionID: session.ID,
		UserID:    session.UserID,
	}
}

func (s *ChatbotService) dispatch(ctx context.Context, intent domain.Intent, entities domain.Entities, query string, session *domain.ChatSession) (string, []domain.ProductCard) {
	switch intent {
	case domain.IntentGreet:
		return greetReply, noProducts()
	case domain.IntentThank:
		return thankReply, noProducts()
	case domain.IntentGoodbye:
		return goodbyeReply, noProducts()
	case domain.IntentResetConversation:
		if err := s.sessionStore.ResetSession(session); err != nil {
			logrus.Errorf("Failed to reset session %s: %v", session.ID, err)
		}
		return resetReply, noProducts()
	case domain.IntentLogin:
		return loginReply(session), noProducts()
	case domain.IntentSearchProduct:
		return s.searchProducts(ctx, entities, query, session)
	case domain.IntentProductDetails:
		return s.productDetails(ctx, entities, session)
	case domain.IntentAddToCart:
		return s.addToCart(ctx, entities, session), noProducts()
	case domain.IntentRemoveFromCart:
		return s.removeFromCart(ctx, entities, session), noProducts()
	case domain.IntentViewCart:
		return s.viewCart(ctx, session)
	case domain.IntentCheckout:
		return s.checkout(ctx, session), noProducts()
	default:
		return unknownReply, noProducts()
	}
}

func loginReply(session *domain.ChatSession) string {
	if !session.Context.LoggedIn {
		return loginHintReply
	}
	username := ""
	if session.Context.Username != nil {
		username = *session.Context.Username
	}
	return fmt.Sprintf(alreadyLoggedInText, username)
}

func (s *ChatbotService) searchProducts(ctx context.Context, entities domain.Entities, query string, session *domain.ChatSession) (string, []domain.ProductCard) {
	filter := domain.ProductQuery{
		Query:    derefString(entities.ProductName),
		Category: derefString(entities.Category),
		Brand:    derefString(entities.Brand),
		MinPrice: entities.MinPrice,
		MaxPrice: entities.MaxPrice,
	}

	hasFilter := entities.HasSearchFilter()
	if !hasFilter && !containsAny(strings.ToLower(query), catalogKeywords) {
		return searchClarifyReply, noProducts()
	}

	result, err := s.shopClient.SearchProducts(ctx, filter)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID}).Warnf("Product search failed: %v", err)
		return domain.ErrorMessage(err, searchFailedReply), noProducts()
	}
	if len(result.Products) == 0 {
		return noResultsReply, noProducts()
	}

	text := catalogResultsReply
	if hasFilter {
		text = fmt.Sprintf(searchResultsText, firstNonEmpty(filter.Query, filter.Category, filter.Brand, "your search"))
	}

	session.Context.LastSearchedProducts = result.Products
	session.Context.LastViewedProductID = stringPtr(result.Products[0].ID)

	cards := make([]domain.ProductCard, 0, len(result.Products))
	for _, p := range result.Products {
		cards = append(cards, domain.CardFromProduct(p))
	}
	return text, cards
}

func (s *ChatbotService) productDetails(ctx context.Context, entities domain.Entities, session *domain.ChatSession) (string, []domain.ProductCard) {
	var (
		product *domain.Product
		err     error
	)
	switch {
	case entities.ProductID != nil:
		product, err = s.shopClient.GetProduct(ctx, *entities.ProductID)
	case entities.ProductName != nil:
		product, err = s.findFirstProduct(ctx, *entities.ProductName)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID}).Warnf("Product lookup failed: %v", err)
	}
	if product == nil {
		return detailsNotFoundReply, noProducts()
	}

	session.Context.LastViewedProductID = stringPtr(product.ID)
	text := fmt.Sprintf("**%s**\nDescription: %s\nPrice: $%.2f\nCategory: %s\nBrand: %s\nIn Stock: %d units",
		product.Name, product.Description, product.Price, product.Category, product.Brand, product.Stock)
	return text, []domain.ProductCard{domain.CardFromProduct(*product)}
}

func (s *ChatbotService) addToCart(ctx context.Context, entities domain.Entities, session *domain.ChatSession) string {
	userID := session.ContextUserID()
	if userID == "" {
		return addLoginReply
	}

	productID := s.resolveProductID(ctx, entities, session)
	if productID == "" {
		return addClarifyReply
	}

	result, err := s.shopClient.AddToCart(ctx, domain.CartMutationRequest{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID, "product_id": productID}).Warnf("Add to cart failed: %v", err)
		return domain.ErrorMessage(err, addFailedReply)
	}
	return result.Message
}

func (s *ChatbotService) removeFromCart(ctx context.Context, entities domain.Entities, session *domain.ChatSession) string {
	userID := session.ContextUserID()
	if userID == "" {
		return removeLoginReply
	}

	productID := s.resolveProductID(ctx, entities, session)
	if productID == "" {
		return removeClarify
	}

	result, err := s.shopClient.RemoveFromCart(ctx, domain.CartMutationRequest{
		UserID:    userID,
		ProductID: productID,
		Quantity:  domain.RemoveAllUnits,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID, "product_id": productID}).Warnf("Remove from cart failed: %v", err)
		return domain.ErrorMessage(err, removeFailedReply)
	}
	return result.Message
}

func (s *ChatbotService) viewCart(ctx context.Context, session *domain.ChatSession) (string, []domain.ProductCard) {
	userID := session.ContextUserID()
	if userID == "" {
		return viewCartLoginReply, noProducts()
	}

	cart, err := s.shopClient.GetCart(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID}).Warnf("View cart failed: %v", err)
		return domain.ErrorMessage(err, viewCartFailedReply), noProducts()
	}
	if len(cart.Items) == 0 {
		return cartEmptyReply, noProducts()
	}

	var b strings.Builder
	b.WriteString("Here's what's in your cart:\n")
	cards := make([]domain.ProductCard, 0, len(cart.Items))
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "- %s (x%d) - $%.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
		cards = append(cards, domain.CardFromCartLine(item))
	}
	fmt.Fprintf(&b, "Total: $%.2f", cart.TotalPrice)
	return b.String(), cards
}

func (s *ChatbotService) checkout(ctx context.Context, session *domain.ChatSession) string {
	userID := session.ContextUserID()
	if userID == "" {
		return checkoutLoginReply
	}

	result, err := s.shopClient.Checkout(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID}).Warnf("Checkout failed: %v", err)
		return domain.ErrorMessage(err, checkoutFailedReply)
	}
	return fmt.Sprintf("Thank you for your purchase! %s. Your Order ID is: %s. Total amount: $%.2f",
		result.Message, result.OrderID, result.TotalAmount)
}

// resolveProductID prefers the extracted id, then the first search hit for
// the extracted name. Returns "" when neither yields a product.
func (s *ChatbotService) resolveProductID(ctx context.Context, entities domain.Entities, session *domain.ChatSession) string {
	if entities.ProductID != nil && *entities.ProductID != "" {
		return *entities.ProductID
	}
	if entities.ProductName == nil || *entities.ProductName == "" {
		return ""
	}
	product, err := s.findFirstProduct(ctx, *entities.ProductName)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": session.ID}).Warnf("Product lookup failed: %v", err)
	}
	if product == nil {
		return ""
	}
	return product.ID
}

func (s *ChatbotService) findFirstProduct(ctx context.Context, name string) (*domain.Product, error) {
	result, err := s.shopClient.SearchProducts(ctx, domain.ProductQuery{Query: name})
	if err != nil {
		return nil, err
	}
	if len(result.Products) == 0 {
		return nil, nil
	}
	return &result.Products[0], nil
}

// logTurn forwards a turn to the chat log; failures never reach the shopper
func (s *ChatbotService) logTurn(ctx context.Context, sessionID string, sender domain.Sender, message string) {
	err := s.shopClient.LogChat(ctx, domain.ChatLogRequest{
		SessionID: sessionID,
		Sender:    sender,
		Message:   message,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"sender":     sender,
		}).Warnf("Failed to record chat log: %v", err)
	}
}

// GetSession func - Use case: snapshot a live session
func (s *ChatbotService) GetSession(ctx context.Context, sessionID string) (*domain.SessionSnapshot, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	session.Lock()
	defer session.Unlock()
	snapshot := session.Snapshot()
	return &snapshot, nil
}

func noProducts() []domain.ProductCard {
	return []domain.ProductCard{}
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
