package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
	json  bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color, json bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
		json:  json,
	}
}

// Render renders the list of supported networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(r.out, "🌐 Supported Networks:")
	fmt.Fprintln(r.out)

	title := cases.Title(language.English)
	t := newTable(table.Row{"", "Chain ID", "Name", "RPC", "Aragon ENS", "Subgraph"})
	for _, n := range result.Networks {
		marker := ""
		if n.Current {
			marker = "*"
		}
		rpc := "-"
		if n.RPCConfigured {
			rpc = "✓"
		}
		name := title.String(n.Name)
		if n.Current && r.color {
			name = color.New(color.FgGreen, color.Bold).Sprint(name)
		}
		t.AppendRow(table.Row{marker, n.ChainID, name, rpc, n.AragonENS, n.SubgraphURL})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
