package render

import (
	"fmt"
	"io"

	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// CheckRenderer renders static validation results
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// Render lists every problem found, or a success line
func (r *CheckRenderer) Render(result *usecase.CheckScriptResult) error {
	if result.Valid() {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d %s checked, no problems found", result.Statements, plural(result.Statements, "statement"))))
		return nil
	}

	for _, problem := range result.Problems {
		fmt.Fprintln(r.out, FormatError(problem))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d %s found", len(result.Problems), plural(len(result.Problems), "problem"))))
	return nil
}

var (
	_ Renderer[*usecase.CheckScriptResult]    = (*CheckRenderer)(nil)
	_ Renderer[*usecase.PredictAddressResult] = (*PredictRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult]   = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.RunScriptResult]      = (*ActionsRenderer)(nil)
)
