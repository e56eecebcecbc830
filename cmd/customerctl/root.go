package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/internal/customer/repository"
	"github.com/spf13/cobra"
)

type storeOpener func(ctx context.Context) (repository.Store, func(), error)

func newRootCmd(open storeOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "customerctl",
		Short:         "Inspect and move the customers document",
		Long:          "customerctl reads and writes the customers document through the store backend configured for the service (STORE_BACKEND and friends).",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newListCmd(open),
		newExportCmd(open),
		newImportCmd(open),
	)
	return rootCmd
}

// withStore opens the store for the duration of fn.
func withStore(cmd *cobra.Command, open storeOpener, fn func(repository.Store) error) error {
	store, closeStore, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

func newListCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers with their current plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, open, func(store repository.Store) error {
				list, err := store.Load(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tPLAN\tSTATUS\tRENEWED")
				for _, c := range list {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Plan.PlanName, c.Plan.PlanStatus, c.Plan.RenewalDate)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "customers: %d\n", len(list))
				return nil
			})
		},
	}
}

func newExportCmd(open storeOpener) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the customers document as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, open, func(store repository.Store) error {
				list, err := store.Load(cmd.Context())
				if err != nil {
					return err
				}
				data, err := repository.Encode(list)
				if err != nil {
					return err
				}
				if out == "" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				return os.WriteFile(out, data, 0o644)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to `file` instead of stdout")
	return cmd
}

func newImportCmd(open storeOpener) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored customers document with the contents of FILE",
		Long:  "import parses FILE as a customers document and saves it as a whole, replacing whatever the backend currently holds. Use - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if err := checkIDs(list); err != nil {
				return err
			}
			if dryRun {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "would import %d customers\n", len(list))
				return nil
			}
			return withStore(cmd, open, func(store repository.Store) error {
				if err := store.Save(cmd.Context(), list); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d customers\n", len(list))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and check FILE without writing")
	return cmd
}

func readDocument(stdin io.Reader, path string) ([]customer.Customer, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return repository.Decode(data)
}

// checkIDs rejects documents the service could not address by id.
func checkIDs(list []customer.Customer) error {
	seen := make(map[string]struct{}, len(list))
	for i, c := range list {
		if c.ID == "" {
			return fmt.Errorf("customer at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate customer id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
