package cli

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"oficina/internal/infrastructure/backup"
)

func newReceiptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <code>",
		Short: "Assemble the receipt payload for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.orders.Receipt(cmd.Context(), args[0], a.cfg.Company)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write today's database snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.backups.Snapshot(time.Now())
			if errors.Is(err, backup.ErrSnapshotExists) {
				cmd.Println("snapshot for today already exists")
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Printf("snapshot written to %s\n", path)
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <zip>",
		Short: "Export database, config and receipts to a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.backups.Export(args[0]); err != nil {
				return err
			}
			cmd.Printf("exported to %s\n", args[0])
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <zip>",
		Short: "Restore database, config and receipts from an exported archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.backups.Restore(args[0]); err != nil {
				return err
			}
			cmd.Println("restore complete; restart to pick up the restored config")
			return nil
		},
	}
}
