package protocal

import (
	"shopbot/configs"
	httpAdapter "shopbot/internal/adapters/input/http"
	"shopbot/internal/adapters/output/gormdb"
	"shopbot/internal/application"
	dbdriver "shopbot/pkg/database_driver/gorm"
	"shopbot/pkg/token"
)

// ServeShopHTTP func - runs the e-commerce service
func ServeShopHTTP() error {
	cfg := configs.GetViper()

	db, err := ConnectDatabase(cfg)
	if err != nil {
		return err
	}

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TTL())
	if err != nil {
		dbdriver.Close(db.Conn)
		return err
	}

	// Wire up the hexagonal architecture layers
	// Output adapter (repository)
	repo := gormdb.NewShopRepository(db.Conn)
	// Application service (use case)
	srv := application.NewShopService(repo, tokens)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.NewShopHandler(srv, db.Conn)

	app := newApp("e-commerce")
	hdl.RegisterRoutes(app)

	return listen(app, cfg.App.Port, func() {
		dbdriver.Close(db.Conn)
	})
}
