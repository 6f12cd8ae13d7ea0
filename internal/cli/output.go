package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", formatTable, "Output format: table, json or yaml")
}

func writeDescriptors(w io.Writer, format string, v any, rows []kernels.Descriptor) error {
	switch format {
	case formatTable:
		formatDescriptorTable(w, rows)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func formatDescriptorTable(w io.Writer, rows []kernels.Descriptor) {
	nameWidth := len("NAME")
	labelWidth := len("LABEL")
	for _, d := range rows {
		nameWidth = max(nameWidth, len(d.Name))
		labelWidth = max(labelWidth, len(d.Label))
	}
	nameWidth += 2
	labelWidth += 2

	fmt.Fprintf(w, "%-6s %-*s %-*s %s\n", "CODE", nameWidth, "NAME", labelWidth, "LABEL", "FAMILY")
	fmt.Fprintf(w, "%s %s %s %s\n",
		strings.Repeat("-", 6),
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", labelWidth),
		strings.Repeat("-", len("FAMILY")))
	for _, d := range rows {
		fmt.Fprintf(w, "%-6d %-*s %-*s %s\n", d.Code, nameWidth, d.Name, labelWidth, d.Label, d.Family)
	}
}
