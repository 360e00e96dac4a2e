package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// PredictRenderer renders predicted proxy addresses
type PredictRenderer struct {
	out  io.Writer
	json bool
}

// NewPredictRenderer creates a new predict renderer
func NewPredictRenderer(out io.Writer, json bool) *PredictRenderer {
	return &PredictRenderer{out: out, json: json}
}

// Render renders the predicted addresses in nonce order
func (r *PredictRenderer) Render(result *usecase.PredictAddressResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(r.out, "Next CREATE addresses of %s:\n\n", result.Deployer.Hex())
	t := newTable(table.Row{"Nonce", "Address"})
	for _, a := range result.Addresses {
		t.AppendRow(table.Row{a.Nonce, a.Address.Hex()})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
