package render

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon. Script errors
// keep their full "Name(node, line:col): message" form, anything else is
// reduced to the last element of the error chain.
func FormatError(err error) string {
	var scriptErr *domain.Error
	if errors.As(err, &scriptErr) {
		return color.New(color.FgRed).Sprintf("❌ %s", scriptErr.Error())
	}

	parts := strings.Split(err.Error(), ": ")
	msg := parts[len(parts)-1]
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// newTable creates a borderless table in the house style
func newTable(header table.Row, widths ...int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.Style().Format.Header = text.FormatDefault

	colConfigs := make([]table.ColumnConfig, 0, len(widths))
	for i, width := range widths {
		cfg := table.ColumnConfig{Number: i + 1, Align: text.AlignLeft}
		if width > 0 {
			cfg.WidthMax = width
		}
		colConfigs = append(colConfigs, cfg)
	}
	t.SetColumnConfigs(colConfigs)
	if header != nil {
		t.AppendHeader(header)
	}
	return t
}

func hexBytes(s string) []byte {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil
	}
	return b
}
