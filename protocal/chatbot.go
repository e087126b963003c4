package protocal

import (
	"shopbot/configs"
	httpAdapter "shopbot/internal/adapters/input/http"
	"shopbot/internal/adapters/output/memory"
	"shopbot/internal/adapters/output/shopapi"
	"shopbot/internal/application"
)

// ServeChatbotHTTP func - runs the chatbot gateway
func ServeChatbotHTTP() error {
	cfg := configs.GetViper()

	// Output adapters (e-commerce client, session store)
	shopClient := shopapi.NewShopClientAdapter(cfg.ShopAPI)
	sessions := memory.NewMemorySessionStore(cfg.Session.IdleTimeout())
	// Application service (dialogue use case)
	srv := application.NewChatbotService(shopClient, sessions)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.NewChatbotHandler(srv, sessions)

	app := newApp("chatbot")
	hdl.RegisterRoutes(app)

	return listen(app, cfg.Chatbot.Port, nil)
}
