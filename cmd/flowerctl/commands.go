package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/florarium-backend/internal/adapter/postgres"
	"github.com/heartmarshall/florarium-backend/internal/archive"
	"github.com/heartmarshall/florarium-backend/internal/auth"
	"github.com/heartmarshall/florarium-backend/internal/botanical"
	"github.com/heartmarshall/florarium-backend/migrations"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flowerctl",
		Short:         "Operator tool for a florarium garden",
		SilenceUsage:  true,
	}
	root.AddCommand(
		newSpeciesCmd(),
		newInspectCmd(),
		newVerifyBackupCmd(),
		newTokenCmd(),
		newMigrateCmd(),
	)
	return root
}

func newSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species [query]",
		Short: "List catalog species, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := botanical.LoadCatalog(nil)
			if err != nil {
				return err
			}

			species := catalog.All()
			if len(args) == 1 {
				species = catalog.Search(args[0])
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCIENTIFIC NAME\tCOMMON NAME\tFAMILY\tRARITY")
			for _, s := range species {
				common := ""
				if len(s.CommonNames) > 0 {
					common = s.CommonNames[0]
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ScientificName, common, s.Family, s.Rarity)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d species\n", len(species), catalog.Len())
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.flower>",
		Short: "Validate a gift file and print what it carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := archive.DecodeFlowerDocument(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			f := doc.Flower
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flower:     %s (%s)\n", f.Name, f.ID)
			if f.ScientificName != "" {
				fmt.Fprintf(out, "species:    %s\n", f.ScientificName)
			}
			fmt.Fprintf(out, "generated:  %s\n", f.GeneratedDate.Format(time.RFC3339))
			fmt.Fprintf(out, "from:       %s\n", doc.TransferMetadata.SenderInfo.Name)
			fmt.Fprintf(out, "transfer:   %s at %s\n", doc.TransferMetadata.TransferID, doc.TransferMetadata.TransferDate.Format(time.RFC3339))
			fmt.Fprintf(out, "owners:     %d previous\n", len(f.OwnershipHistory))
			fmt.Fprintf(out, "image:      %d bytes\n", len(f.ImageData))
			return nil
		},
	}
}

func newVerifyBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-backup <file.bouquet>",
		Short: "Check a backup's version, flower count and checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := archive.DecodeBackup(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			m := doc.Metadata
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %d flowers, version %d\n", m.TotalFlowers, doc.Version)
			fmt.Fprintf(out, "exported %s by %s (%s), app %s\n",
				m.ExportDate.Format(time.RFC3339), m.DeviceName, m.DeviceID, m.AppVersion)
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		secret string
		issuer string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token <device-name>",
		Short: "Register a device and print its bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(secret) < 32 {
				return fmt.Errorf("secret must be at least 32 characters (set --secret or AUTH_JWT_SECRET)")
			}
			device, token, expires, err := auth.NewJWTManager(secret, issuer, ttl).RegisterDevice(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "device:  %s (%s)\n", device.Name, device.ID)
			fmt.Fprintf(out, "expires: %s\n", expires.Format(time.RFC3339))
			fmt.Fprintln(out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "JWT signing secret")
	cmd.Flags().StringVar(&issuer, "issuer", envOr("AUTH_JWT_ISSUER", "florarium"), "JWT issuer")
	cmd.Flags().DurationVar(&ttl, "ttl", 8760*time.Hour, "token lifetime")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var (
		dsn     string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending cloud sync database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				return fmt.Errorf("database DSN required (set --dsn or DATABASE_DSN)")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			applied, err := postgres.Migrate(ctx, dsn, migrations.FS)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), applied)
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "migration timeout")
	return cmd
}

func report(w io.Writer, applied int) {
	if applied == 0 {
		fmt.Fprintln(w, "database is up to date")
		return
	}
	fmt.Fprintf(w, "applied %d migration(s)\n", applied)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
