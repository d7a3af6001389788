package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pet-clinic-site/internal/domain/pets"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the whole collection as yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" {
				return fmt.Errorf("invalid output %q: must be yaml or json", output)
			}

			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				list, err := b.List(ctx, pets.Filter{})
				if err != nil {
					return err
				}

				w := out(cmd)
				if output == "json" {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(list)
				}
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(list); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "export format (yaml|json)")
	return cmd
}

func newImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the whole collection with the records in a yaml or json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			list, err := decodePets(args[0], raw)
			if err != nil {
				return err
			}

			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				c := confirmerFor(opts, cmd.InOrStdin(), cmd.ErrOrStderr())
				ok, err := c.Confirm(ctx, fmt.Sprintf("¿Reemplazar el registro con %d mascotas?", len(list)))
				if err != nil {
					return err
				}
				if !ok {
					return formatter(out(cmd), opts).Message("Cancelado.")
				}

				if err := b.Replace(ctx, list); err != nil {
					if errors.Is(err, pets.ErrInvalidInput) {
						return fmt.Errorf("import %s: %w", filepath.Base(args[0]), err)
					}
					return err
				}
				return formatter(out(cmd), opts).Message(fmt.Sprintf("Importadas %d mascotas.", len(list)))
			})
		},
	}
}

// decodePets acepta json (por extensión o si empieza con '[') y si no yaml.
func decodePets(name string, raw []byte) ([]pets.Pet, error) {
	var list []pets.Pet

	trimmed := bytes.TrimSpace(raw)
	if strings.EqualFold(filepath.Ext(name), ".json") || bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(name), err)
		}
		return list, nil
	}

	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(name), err)
	}
	return list, nil
}
