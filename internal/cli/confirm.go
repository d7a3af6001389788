package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pet-clinic-site/internal/ports/confirm"
)

// promptConfirmer pregunta [y/N] por la terminal. Cualquier cosa que no sea
// y/yes/s/si cuenta como no (también EOF).
func promptConfirmer(in io.Reader, out io.Writer) confirm.Confirmer {
	r := bufio.NewReader(in)
	return confirm.Func(func(ctx context.Context, prompt string) (bool, error) {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "s", "si", "sí":
			return true, nil
		}
		return false, nil
	})
}

func confirmerFor(opts *RootOptions, in io.Reader, out io.Writer) confirm.Confirmer {
	if opts.Yes {
		return confirm.Always(true)
	}
	return promptConfirmer(in, out)
}
