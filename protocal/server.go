package protocal

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopbot/configs"
	dbdriver "shopbot/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func newApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Get("/swagger/*", swagger.HandlerDefault)
	return app
}

// ConnectDatabase opens the configured database. An empty postgres dsn is
// built from the postgres section.
func ConnectDatabase(cfg *configs.Config) (*dbdriver.DB, error) {
	dsn := cfg.Database.DSN
	if cfg.Database.Driver == dbdriver.DriverPostgres && dsn == "" {
		var err error
		dsn, err = dbdriver.PostgresDSN(
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.Username,
			cfg.Postgres.Password,
			cfg.Postgres.DbName,
			cfg.Postgres.SSLMode,
		)
		if err != nil {
			return nil, err
		}
	}
	return dbdriver.Open(cfg.Database.Driver, dsn)
}

// listen serves app until an interrupt arrives, then runs cleanup
func listen(app *fiber.App, port string, cleanup func()) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Gracefull shut down ...")
		if err := app.Shutdown(); err != nil {
			log.Println("Error when shutdown server: ", err)
		}
	}()

	logrus.Infof("%s listening on port: %s", app.Config().AppName, port)
	err := app.Listen(":" + port)
	if cleanup != nil {
		cleanup()
	}
	return err
}
