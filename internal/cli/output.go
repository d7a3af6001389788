package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"pet-clinic-site/internal/domain/pets"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func formatter(w io.Writer, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Pets imprime la tabla (text) o el array (json).
func (f *OutputFormatter) Pets(list []pets.Pet) error {
	if f.Format == "json" {
		return f.json(list)
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(f.Writer, "No hay mascotas.")
		return err
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tESPECIE\tEDAD\tDUEÑO\tALTA\tNOTAS")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Species, pets.AgeLabel(p.Age), p.Owner, p.CreatedAt.Format("2006-01-02"), p.Notes)
	}
	return tw.Flush()
}

func (f *OutputFormatter) Pet(p pets.Pet) error {
	return f.Pets([]pets.Pet{p})
}

// Message imprime una línea de resultado; en json va como {"message": ...}.
func (f *OutputFormatter) Message(msg string) error {
	if f.Format == "json" {
		return f.json(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(f.Writer, msg)
	return err
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
