package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entrypoint"
)

// MigrateCommand creates or updates the catalog schema and exits.
type MigrateCommand struct {
	cfg *config.Config
}

func NewMigrateCommand(cfg *config.Config) *MigrateCommand {
	return &MigrateCommand{cfg: cfg}
}

func (cmd *MigrateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the authors, genres and books tables with their constraints.\n")
		fmt.Fprintf(os.Stderr, "Connection settings are read from the environment (DB_DRIVER, DB_HOST, ...).\n")
	}
	return fs.Parse(args)
}

func (cmd *MigrateCommand) Run() error {
	// NewDatabase applies the migration as part of connecting.
	db := entrypoint.Connect(cmd.cfg)
	defer db.Close()

	version, err := database.AppliedVersion(context.Background(), db.DB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	fmt.Printf("Schema at version %d (%s)\n", version, database.SchemaName)
	return nil
}
