package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jdn-utils/jdnutils/pkg/wire"
)

// InspectCLI walks a file of concatenated finalized messages.
type InspectCLI struct {
	JSON bool   `help:"Print one JSON object per message" short:"j"`
	File string `arg:"" help:"File of finalized messages" type:"existingfile"`
}

type messageInfo struct {
	Offset   int `json:"offset"`
	Bytes    int `json:"bytes"`
	Elements int `json:"elements"` // -1 when the payload is not a sequence
}

func (c *InspectCLI) Run(logger *slog.Logger, out io.Writer) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	buf := data
	enc := json.NewEncoder(out)
	count := 0
	for len(buf) > 0 {
		offset := len(data) - len(buf)
		payload, err := wire.RemoveMessage(&buf)
		if err != nil {
			return fmt.Errorf("truncated message at offset %d: %w", offset, err)
		}

		info := messageInfo{Offset: offset, Bytes: len(payload), Elements: elements(payload)}
		if c.JSON {
			if err := enc.Encode(info); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "offset=%d bytes=%d elements=%d\n", info.Offset, info.Bytes, info.Elements)
		}
		count++
	}

	logger.Info("inspected file", "file", c.File, "messages", count)
	return nil
}

// elements reports how many strings payload holds, or -1 if it is not
// exactly one well-formed sequence.
func elements(payload []byte) int {
	values, err := wire.DeserializeSequence(&payload)
	if err != nil || len(payload) != 0 {
		return -1
	}
	return len(values)
}
