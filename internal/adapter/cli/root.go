// Package cli wires the use cases into the command-line collaborator used
// for data migration, finance summaries and backups. Every failure is logged
// and surfaced as a non-zero exit; nothing here panics.
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"oficina/internal/adapter/persistence/repository"
	"oficina/internal/infrastructure/backup"
	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/database"
	"oficina/internal/usecase"
)

type app struct {
	cfg       config.Config
	customers usecase.ICustomerUseCase
	orders    usecase.IOrderUseCase
	finance   usecase.IFinanceUseCase
	importer  usecase.IImportUseCase
	backups   *backup.Manager
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return err
	}

	customerRepo := repository.NewCustomerGormRepository(db)
	orderRepo := repository.NewOrderGormRepository(db)

	a.cfg = cfg
	a.customers = usecase.NewCustomerUseCase(customerRepo)
	a.orders = usecase.NewOrderUseCase(orderRepo, customerRepo)
	a.finance = usecase.NewFinanceUseCase(orderRepo)
	a.importer = usecase.NewImportUseCase(customerRepo, orderRepo)
	a.backups = backup.NewManager(cfg.DBPath, "config.json", cfg.ReceiptsDir, cfg.BackupDir, cfg.MaxBackups)
	return nil
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "oficina",
		Short:         "Repair-shop service order management",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		newInitCmd(),
		newCompanyCmd(a),
		newCustomerCmd(a),
		newOrderCmd(a),
		newSummaryCmd(a),
		newMonthsCmd(a),
		newDashboardCmd(a),
		newImportCmd(a),
		newReceiptCmd(a),
		newBackupCmd(a),
		newExportCmd(a),
		newRestoreCmd(a),
	)
	return root
}

// Execute runs the CLI and converts any failure into a logged message and a
// non-zero exit status.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the database file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE already connected and migrated.
			cmd.Println("database ready")
			return nil
		},
	}
}
