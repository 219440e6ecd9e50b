package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jdn-utils/jdnutils/pkg/config"
)

// VerifyCLI checks values against a field profile without encoding them.
type VerifyCLI struct {
	Field  string   `help:"Profile key the values belong to" short:"f" default:"value"`
	Values []string `arg:"" help:"Values to check"`
}

func (v *VerifyCLI) Run(logger *slog.Logger, profiles *config.Profiles, out io.Writer) error {
	for _, raw := range v.Values {
		s, err := profiles.Verify(v.Field, raw)
		if err != nil {
			return err
		}
		logger.Debug("value verified", "field", v.Field, "value", s.String())
		fmt.Fprintf(out, "ok\t%s\n", s)
	}
	return nil
}
