package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"profast/cmd"
	"profast/internal/adapters/out/postgres"
	"profast/internal/adapters/out/postgres/userrepo"
	"profast/internal/adapters/out/postgres/warehouserepo"
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/domain/model/warehouse"

	"github.com/lib/pq"
	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func createDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "createdb",
		Short: "Create DB_NAME if it does not exist",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(dotenvPath)
			if err != nil {
				return err
			}

			db, err := sql.Open("postgres", configs.PostgresURL("postgres"))
			if err != nil {
				return err
			}
			defer db.Close()

			created, err := createDatabase(c, db, configs.DBName)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(c.OutOrStdout(), "created database %s\n", configs.DBName)
			} else {
				fmt.Fprintf(c.OutOrStdout(), "database %s already exists\n", configs.DBName)
			}
			return nil
		},
	}
}

func createDatabase(c *cobra.Command, db *sql.DB, name string) (bool, error) {
	ctx := c.Context()

	var exists bool
	if err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name,
	).Scan(&exists); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes",
		RunE: func(c *cobra.Command, _ []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err = postgres.Migrate(c.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func seedWarehousesCmd() *cobra.Command {
	var file string

	command := &cobra.Command{
		Use:   "seed-warehouses",
		Short: "Upsert service centres from a JSON array",
		Example: `  dbtool seed-warehouses --file warehouses.json
  cat warehouses.json | dbtool seed-warehouses --file -`,
		RunE: func(c *cobra.Command, _ []string) error {
			ws, err := readWarehouses(c, file)
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			n, err := warehouserepo.NewGormWarehouseRepository(db).Upsert(c.Context(), ws)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "upserted %d warehouses\n", n)
			return nil
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "JSON file, or - for stdin")
	_ = command.MarkFlagRequired("file")

	return command
}

func readWarehouses(c *cobra.Command, file string) ([]warehouse.Warehouse, error) {
	var r io.Reader = c.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var ws []warehouse.Warehouse
	if err := json.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	for i, w := range ws {
		if w.Region == "" || w.District == "" {
			return nil, fmt.Errorf("warehouse %d: region and district are required", i)
		}
	}
	return ws, nil
}

func grantAdminCmd() *cobra.Command {
	var email string

	command := &cobra.Command{
		Use:   "grant-admin",
		Short: "Give a registered user the admin role",
		RunE: func(c *cobra.Command, _ []string) error {
			addr, err := kernel.NewEmail(email)
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			u, err := userrepo.NewGormUserRepository(db).GetByEmail(c.Context(), addr)
			if err != nil {
				return err
			}

			change, err := commands.NewChangeUserRoleCommand(u.ID(), user.RoleAdmin.String())
			if err != nil {
				return err
			}
			factory := postgres.NewGormUnitOfWorkFactory(db, nil, slog.New(slog.NewTextHandler(c.ErrOrStderr(), nil)))
			handler := commands.NewChangeUserRoleCommandHandler(cmd.FuncUserUoWFactory(func() commands.UserUoW {
				return factory.Create()
			}))
			res, err := handler.Handle(c.Context(), change)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s is admin (modified %d)\n", addr, res.ModifiedCount)
			return nil
		},
	}
	command.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = command.MarkFlagRequired("email")

	return command
}

func openDB() (*gorm.DB, error) {
	configs, err := cmd.LoadConfig(dotenvPath)
	if err != nil {
		return nil, err
	}
	return gorm.Open(pgdriver.Open(configs.PostgresDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
