package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	abidecoder "github.com/lobintsev/evmcrispr/internal/adapters/abi"
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

var (
	indexStyle    = color.New(color.Faint)
	methodStyle   = color.New(color.FgCyan)
	labelStyle    = color.New(color.FgGreen)
	providerStyle = color.New(color.FgMagenta)
	valueStyle    = color.New(color.FgYellow)
	treeStyle     = color.New(color.Faint)
)

// ActionsRenderer renders the actions produced by a script
type ActionsRenderer struct {
	out   io.Writer
	color bool
	json  bool
}

// NewActionsRenderer creates a new actions renderer
func NewActionsRenderer(out io.Writer, color, json bool) *ActionsRenderer {
	return &ActionsRenderer{
		out:   out,
		color: color,
		json:  json,
	}
}

// Render writes the action list as a table, or as JSON when requested
func (r *ActionsRenderer) Render(result *usecase.RunScriptResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	if len(result.Actions) == 0 {
		fmt.Fprintln(r.out, "No actions produced")
		return nil
	}

	decoder := abidecoder.NewActionDecoder(result.Labels)
	t := newTable(table.Row{"#", "To", "Call", "Value"}, 0, 0, 100, 0)

	for i, action := range result.Actions {
		switch a := action.(type) {
		case domain.TransactionAction:
			decoded := decoder.DecodeAction(a)
			t.AppendRow(table.Row{
				r.sprint(indexStyle, fmt.Sprint(i+1)),
				r.sprint(labelStyle, decoded.Label),
				r.sprint(methodStyle, callText(decoded)),
				r.sprint(valueStyle, formatWei(a.Value)),
			})
			for _, line := range nestedLines(decoded.Nested, "") {
				t.AppendRow(table.Row{"", "", r.sprint(treeStyle, line), ""})
			}
		case domain.ProviderAction:
			t.AppendRow(table.Row{
				r.sprint(indexStyle, fmt.Sprint(i+1)),
				r.sprint(providerStyle, "provider"),
				r.sprint(providerStyle, fmt.Sprintf("%s(%s)", a.Method, providerParams(a.Params))),
				"",
			})
		}
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d %s produced for %s", len(result.Actions), plural(len(result.Actions), "action"), result.From.Hex())))
	return nil
}

type jsonResult struct {
	ChainID uint64          `json:"chainId"`
	From    string          `json:"from"`
	Actions []domain.Action `json:"actions"`
}

func (r *ActionsRenderer) renderJSON(result *usecase.RunScriptResult) error {
	actions := result.Actions
	if actions == nil {
		actions = []domain.Action{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		ChainID: result.ChainID,
		From:    result.From.Hex(),
		Actions: actions,
	})
}

func (r *ActionsRenderer) sprint(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func callText(d *abidecoder.DecodedAction) string {
	if d.Method == "unknown" {
		return abidecoder.FormatValue(hexBytes(d.RawData), "bytes")
	}
	args := make([]string, 0, len(d.Inputs))
	for _, in := range d.Inputs {
		args = append(args, abidecoder.FormatValue(in.Value, in.Type))
	}
	return fmt.Sprintf("%s(%s)", d.Method, strings.Join(args, ", "))
}

// nestedLines renders forwarded actions as a tree below their forward call
func nestedLines(nested []*abidecoder.DecodedAction, prefix string) []string {
	var lines []string
	for i, n := range nested {
		branch, next := "├─ ", "│  "
		if i == len(nested)-1 {
			branch, next = "└─ ", "   "
		}
		lines = append(lines, prefix+branch+n.FormatCompact())
		lines = append(lines, nestedLines(n.Nested, prefix+next)...)
	}
	return lines
}

func providerParams(params []any) string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			out = append(out, fmt.Sprint(p))
			continue
		}
		out = append(out, string(b))
	}
	return strings.Join(out, ", ")
}

func formatWei(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return ""
	}
	return v.String() + " wei"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
