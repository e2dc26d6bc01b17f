// Command dbtool prepares the PostgreSQL store: it creates the database, applies
// the schema, seeds service centres and grants the first admin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dotenvPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Database maintenance for the parcel service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dotenvPath, "env-file", ".env", "dotenv file with DB_* settings")

	rootCmd.AddCommand(createDBCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedWarehousesCmd())
	rootCmd.AddCommand(grantAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
