package main

// @title Shopbot APIs
// @version 1.0
// @description E-commerce service and rule-based sales assistant.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @schemes http
import (
	"os"

	_ "shopbot/docs"
	"shopbot/internal/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}
