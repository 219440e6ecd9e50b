package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cbroglie/mustache"
	"github.com/jdn-utils/jdnutils/pkg/config"
	"github.com/jdn-utils/jdnutils/pkg/normstr"
	"github.com/jdn-utils/jdnutils/pkg/wire"
)

// DecodeCLI reads an encoded sequence from a file and prints its values.
type DecodeCLI struct {
	Finalized bool   `help:"Input starts with a total length prefix"`
	Field     string `help:"Validate decoded values against this profile key" short:"f"`
	Template  string `help:"Mustache template for output, e.g. '{{#values}}{{index}}={{value}} {{/values}}'" short:"t"`
	File      string `arg:"" help:"Encoded input file" type:"existingfile"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, profiles *config.Profiles, out io.Writer) error {
	buf, err := os.ReadFile(d.File)
	if err != nil {
		return err
	}

	if d.Finalized {
		payload, err := wire.RemoveMessage(&buf)
		if err != nil {
			return fmt.Errorf("failed to read message from %s: %w", d.File, err)
		}
		if len(buf) > 0 {
			logger.Warn("trailing bytes after message", "file", d.File, "bytes", len(buf))
		}
		buf = payload
	}

	values, err := d.decode(&buf, profiles)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", d.File, err)
	}
	if len(buf) > 0 {
		logger.Warn("trailing bytes after sequence", "file", d.File, "bytes", len(buf))
	}
	logger.Debug("decoded sequence", "file", d.File, "count", len(values))

	return d.render(out, values)
}

func (d *DecodeCLI) decode(buf *[]byte, profiles *config.Profiles) ([]string, error) {
	if d.Field == "" {
		return wire.DeserializeSequence(buf)
	}

	label, c := profiles.Field(d.Field)
	verified, err := wire.DeserializeSequenceAs(buf, normstr.Parser(label, c))
	if err != nil {
		return nil, err
	}
	values := make([]string, len(verified))
	for i, v := range verified {
		values[i] = v.String()
	}
	return values, nil
}

func (d *DecodeCLI) render(out io.Writer, values []string) error {
	if d.Template == "" {
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
		return nil
	}

	items := make([]map[string]any, len(values))
	for i, v := range values {
		items[i] = map[string]any{"index": i, "value": v}
	}
	// Output is plain text, so values are never HTML-escaped.
	text, err := mustache.RenderRaw(d.Template, true, map[string]any{
		"values": items,
		"count":  len(values),
	})
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	_, err = io.WriteString(out, text)
	return err
}
