package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pet-clinic-site/internal/domain/pets"

	"github.com/spf13/cobra"
)

type petFlags struct {
	name    string
	species string
	age     string
	owner   string
	notes   string
}

func (f *petFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "pet name (at least 2 characters)")
	cmd.Flags().StringVar(&f.species, "species", string(pets.SpeciesDog), "Perro|Gato|Ave|Conejo|Otro")
	cmd.Flags().StringVar(&f.age, "age", "0", "age in years")
	cmd.Flags().StringVar(&f.owner, "owner", "", "owner name (at least 2 characters)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
}

func (f *petFlags) input() pets.CreateInput {
	return pets.CreateInput{Name: f.name, Species: f.species, Age: f.age, Owner: f.owner, Notes: f.notes}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	var species, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				list, err := b.List(ctx, pets.Filter{Species: pets.Species(species), Query: query})
				if err != nil {
					return err
				}
				return formatter(out(cmd), opts).Pets(list)
			})
		},
	}
	cmd.Flags().StringVar(&species, "species", string(pets.SpeciesAll), "exact species or all")
	cmd.Flags().StringVarP(&query, "query", "q", "", "text to match in name or owner")
	return cmd
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	f := &petFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				p, err := b.Create(ctx, f.input())
				if err != nil {
					return userError(err)
				}
				return formatter(out(cmd), opts).Pet(p)
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	f := &petFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a pet; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				cur, err := b.Get(ctx, id)
				if err != nil {
					return userError(err)
				}

				in := pets.CreateInput{
					Name:    cur.Name,
					Species: string(cur.Species),
					Age:     strconv.FormatFloat(cur.Age, 'f', -1, 64),
					Owner:   cur.Owner,
					Notes:   cur.Notes,
				}
				flags := cmd.Flags()
				if flags.Changed("name") {
					in.Name = f.name
				}
				if flags.Changed("species") {
					in.Species = f.species
				}
				if flags.Changed("age") {
					in.Age = f.age
				}
				if flags.Changed("owner") {
					in.Owner = f.owner
				}
				if flags.Changed("notes") {
					in.Notes = f.notes
				}

				p, err := b.Update(ctx, id, in)
				if err != nil {
					return userError(err)
				}
				return formatter(out(cmd), opts).Pet(p)
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a pet (asks for confirmation)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				c := confirmerFor(opts, cmd.InOrStdin(), cmd.ErrOrStderr())
				if err := b.RemoveConfirmed(ctx, id, c); err != nil {
					if errors.Is(err, pets.ErrNotConfirmed) {
						return formatter(out(cmd), opts).Message("Cancelado.")
					}
					return userError(err)
				}
				return formatter(out(cmd), opts).Message(fmt.Sprintf("Mascota #%d eliminada.", id))
			})
		},
	}
}

func newClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every record (asks for confirmation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				c := confirmerFor(opts, cmd.InOrStdin(), cmd.ErrOrStderr())
				if err := b.ClearAllConfirmed(ctx, c); err != nil {
					if errors.Is(err, pets.ErrNotConfirmed) {
						return formatter(out(cmd), opts).Message("Cancelado.")
					}
					return err
				}
				return formatter(out(cmd), opts).Message("Se eliminaron todos los registros.")
			})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid pet id %q", raw)
	}
	return id, nil
}

// userError deja los errores de validación/not found en una línea legible.
func userError(err error) error {
	var verr *pets.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("%s: %s", verr.Field, verr.Message)
	case errors.Is(err, pets.ErrNotFound):
		return pets.ErrNotFound
	}
	return err
}
