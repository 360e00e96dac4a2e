package scriptfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

const installScript = `
body:
  - command: load
    args:
      - as: {left: {identifier: aragonos}, right: {identifier: ar}}
  - command: connect
    module: ar
    args:
      - identifier: my-dao
      - block:
          - command: install
            args:
              - identifier: "vault:new"
          - command: set
            args:
              - identifier: $amount
              - binary: {op: "*", left: 1.5e18, right: {number: "2"}}
          - command: exec
            args:
              - 0x44fA8E6f47987339850636F88629646662444217
              - "transfer(address,uint256)"
              - helper: {name: me}
              - identifier: $amount
            opts:
              value: 0
              flag: true
              data: 0xdeadbeef
`

func TestParse(t *testing.T) {
	program, err := Parse([]byte(installScript))
	require.NoError(t, err)
	require.Len(t, program.Body, 2)

	ignoreLoc := cmpopts.IgnoreFields(ast.CommandExpression{}, "Location")

	load := program.Body[0]
	want := &ast.CommandExpression{
		Name: "load",
		Args: []ast.Node{&ast.AsExpression{
			Left:     &ast.Identifier{Value: "aragonos", Location: load.Args[0].(*ast.AsExpression).Left.Loc()},
			Right:    &ast.Identifier{Value: "ar", Location: load.Args[0].(*ast.AsExpression).Right.Loc()},
			Location: load.Args[0].Loc(),
		}},
	}
	if diff := cmp.Diff(want, load, ignoreLoc); diff != "" {
		t.Errorf("load command mismatch (-want +got):\n%s", diff)
	}

	connect := program.Body[1]
	assert.Equal(t, "ar:connect", connect.FullName())
	require.Len(t, connect.Args, 2)
	block, ok := connect.Args[1].(*ast.BlockExpression)
	require.True(t, ok)
	require.Len(t, block.Body, 3)

	set := block.Body[1]
	bin, ok := set.Args[1].(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Operator)
	assert.Equal(t, "1.5e18", bin.Left.(*ast.NumberLiteral).Value)
	assert.Equal(t, "2", bin.Right.(*ast.NumberLiteral).Value)

	exec := block.Body[2]
	assert.IsType(t, &ast.AddressLiteral{}, exec.Args[0])
	assert.IsType(t, &ast.StringLiteral{}, exec.Args[1])
	assert.Equal(t, "me", exec.Args[2].(*ast.HelperExpression).Name)
	assert.True(t, exec.Args[3].(*ast.Identifier).IsVariable())

	value, ok := exec.Opt("value")
	require.True(t, ok)
	assert.IsType(t, &ast.NumberLiteral{}, value.Value)
	flag, _ := exec.Opt("flag")
	assert.Equal(t, true, flag.Value.(*ast.BoolLiteral).Value)
	data, _ := exec.Opt("data")
	assert.Equal(t, "0xdeadbeef", data.Value.(*ast.BytesLiteral).Value)

	assert.Equal(t, 3, load.Location.Start.Line)
}

func TestParse_ExplicitLocation(t *testing.T) {
	program, err := Parse([]byte(`{"body":[{"command":"print","line":7,"col":3,"args":[{"string":"hi","line":7,"col":9}]}]}`))
	require.NoError(t, err)
	require.Len(t, program.Body, 1)

	c := program.Body[0]
	assert.Equal(t, ast.Position{Line: 7, Col: 3}, c.Location.Start)
	assert.Equal(t, ast.Position{Line: 7, Col: 9}, c.Args[0].Loc().Start)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"not a mapping", `- a`, "script document must be a mapping"},
		{"body not a list", `body: 1`, "expected a list of commands"},
		{"missing command name", `body: [{args: []}]`, "command name missing"},
		{"unknown field", `body: [{command: x, flags: 1}]`, `unknown command field "flags"`},
		{"two node types", `body: [{command: x, args: [{identifier: a, string: b}]}]`, "node has more than one type"},
		{"unknown node type", `body: [{command: x, args: [{tuple: a}]}]`, `unknown node type "tuple"`},
		{"bad operator", `body: [{command: x, args: [{binary: {op: "%", left: 1, right: 2}}]}]`, `unknown operator "%"`},
		{"missing operand", `body: [{command: x, args: [{binary: {op: "+", left: 1}}]}]`, "right operand missing"},
		{"helper without name", `body: [{command: x, args: [{helper: {args: []}}]}]`, "helper name missing"},
		{"invalid yaml", "body: [", "failed to decode script document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(installScript), 0o644))

	program, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, program.Body, 2)

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")
}
