package http

import (
	"shopbot/internal/domain"
	"shopbot/internal/ports/input"
	"shopbot/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ShopHandler struct - Primary/Driving adapter for the e-commerce HTTP API
type ShopHandler struct {
	srv       input.ShopService
	db        *gorm.DB
	validator validator.Validator
}

// NewShopHandler func - Creates new e-commerce HTTP handler
func NewShopHandler(srv input.ShopService, db *gorm.DB) *ShopHandler {
	return &ShopHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
// @Summary Health check
// @Tags Shop
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
func (hdl *ShopHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}

	err = sqlDB.PingContext(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: HealthResponse{Service: "e-commerce"}})
}

// Login godoc
// @Summary Log a shopper in
// @Tags Shop
// @Accept application/json
// @Produce json
// @param Login body LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (hdl *ShopHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return badRequest(c, err.Error())
	}

	response, err := hdl.srv.Login(c.UserContext(), domain.LoginRequest{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// SearchProducts godoc
// @Summary Search the catalog
// @Description Every filter is optional; text matches name or description, category and brand match exactly
// @Tags Shop
// @Produce json
// @param id query string false "product id"
// @param q query string false "free text"
// @param category query string false "category"
// @param brand query string false "brand"
// @param min_price query number false "minimum price"
// @param max_price query number false "maximum price"
// @Success 200 {object} domain.ProductList
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (hdl *ShopHandler) SearchProducts(c *fiber.Ctx) error {
	var condition QueryProductRequest
	if err := c.QueryParser(&condition); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := hdl.srv.SearchProducts(c.UserContext(), domain.ProductQuery{
		ID:       condition.ID,
		Query:    condition.Query,
		Category: condition.Category,
		Brand:    condition.Brand,
		MinPrice: condition.MinPrice,
		MaxPrice: condition.MaxPrice,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetProduct godoc
// @Summary Get one product
// @Tags Shop
// @Produce json
// @param id path string true "product id"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (hdl *ShopHandler) GetProduct(c *fiber.Ctx) error {
	product, err := hdl.srv.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// GetCart godoc
// @Summary View a user's cart
// @Description Creates an empty cart when the user has none
// @Tags Shop
// @Produce json
// @param user_id path string true "user id"
// @Success 200 {object} domain.CartView
// @Router /cart/{user_id} [get]
func (hdl *ShopHandler) GetCart(c *fiber.Ctx) error {
	cart, err := hdl.srv.GetCart(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cart)
}

// AddToCart godoc
// @Summary Add units of a product to a cart
// @Tags Shop
// @Accept application/json
// @Produce json
// @param AddToCart body AddToCartRequest true "Cart line"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/add [post]
func (hdl *ShopHandler) AddToCart(c *fiber.Ctx) error {
	var request AddToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return badRequest(c, err.Error())
	}

	response, err := hdl.srv.AddToCart(c.UserContext(), domain.CartMutationRequest{
		UserID:    request.UserID,
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// RemoveFromCart godoc
// @Summary Remove units of a product from a cart
// @Description quantity -1 or omitted removes the whole line
// @Tags Shop
// @Accept application/json
// @Produce json
// @param RemoveFromCart body RemoveFromCartRequest true "Cart line"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/remove [post]
func (hdl *ShopHandler) RemoveFromCart(c *fiber.Ctx) error {
	var request RemoveFromCartRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return badRequest(c, err.Error())
	}

	quantity := domain.RemoveAllUnits
	if request.Quantity != nil {
		quantity = *request.Quantity
	}
	response, err := hdl.srv.RemoveFromCart(c.UserContext(), domain.CartMutationRequest{
		UserID:    request.UserID,
		ProductID: request.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// Checkout godoc
// @Summary Turn a cart into an order
// @Tags Shop
// @Accept application/json
// @Produce json
// @param Checkout body CheckoutRequest true "Owner of the cart"
// @Success 200 {object} domain.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout [post]
func (hdl *ShopHandler) Checkout(c *fiber.Ctx) error {
	var request CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return badRequest(c, err.Error())
	}

	response, err := hdl.srv.Checkout(c.UserContext(), domain.CheckoutRequest{UserID: request.UserID})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// RecordChatLog godoc
// @Summary Append a chat turn to the audit log
// @Tags Shop
// @Accept application/json
// @Produce json
// @param ChatLog body ChatLogRequest true "Chat turn"
// @Success 201 {object} domain.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /chat_logs [post]
func (hdl *ShopHandler) RecordChatLog(c *fiber.Ctx) error {
	var request ChatLogRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return badRequest(c, err.Error())
	}

	response, err := hdl.srv.RecordChatLog(c.UserContext(), domain.ChatLogRequest{
		SessionID: request.SessionID,
		Sender:    domain.Sender(request.Sender),
		Message:   request.Message,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// RegisterRoutes mounts the e-commerce endpoints on app
func (hdl *ShopHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", hdl.HealthCheck)
	app.Post("/login", hdl.Login)
	app.Get("/products", hdl.SearchProducts)
	app.Get("/products/:id", hdl.GetProduct)
	app.Get("/cart/:user_id", hdl.GetCart)
	app.Post("/cart/add", hdl.AddToCart)
	app.Post("/cart/remove", hdl.RemoveFromCart)
	app.Post("/checkout", hdl.Checkout)
	app.Post("/chat_logs", hdl.RecordChatLog)
}
