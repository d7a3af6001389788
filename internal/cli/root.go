package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	Server string // vacío => store local según STORE_BACKEND
	Yes    bool

	open Opener
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand crea petsctl con el backend real (store local o API remota).
func NewRootCommand() *cobra.Command {
	return newRootCommand(openBackend)
}

func newRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "petsctl",
		Short: "Administra el registro de mascotas de la clínica",
		Long: `Administra el registro de mascotas de la clínica.

Sin --server trabaja directo sobre el store configurado (STORE_BACKEND).
Con --server (o PETS_SERVER) usa la API HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "base URL of the pets API (default $PETS_SERVER)")
	cmd.PersistentFlags().BoolVarP(&opts.Yes, "yes", "y", false, "answer yes to confirmation prompts")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newEditCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))
	cmd.AddCommand(newClearCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newImportCommand(opts))

	return cmd
}

// withBackend abre el backend, corre fn y lo cierra.
func withBackend(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, b Backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b, closeFn, err := opts.open(ctx, opts.Server)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	return fn(ctx, b)
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
