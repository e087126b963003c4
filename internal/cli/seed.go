package cli

import (
	"shopbot/configs"
	"shopbot/internal/adapters/output/gormdb"
	dbdriver "shopbot/pkg/database_driver/gorm"
	protocol "shopbot/protocal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	seedProducts int
	seedValue    int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the database with a fake catalog and the demo user",
		RunE:  runSeed,
	}
	cmd.Flags().IntVarP(&seedProducts, "products", "n", 100, "number of products to generate")
	cmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (0 picks one)")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := protocol.ConnectDatabase(configs.GetViper())
	if err != nil {
		return err
	}
	defer dbdriver.Close(db.Conn)

	repo := gormdb.NewShopRepository(db.Conn)
	err = repo.Seed(cmd.Context(), gormdb.SeedOptions{Products: seedProducts, RandomSeed: seedValue})
	if err != nil {
		return err
	}

	logrus.Infof("Seeded %d products and user %s/%s", seedProducts, gormdb.DemoUsername, gormdb.DemoPassword)
	return nil
}
