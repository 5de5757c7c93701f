package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purpleposeidon/ezty/pretty"
)

func TestApply(t *testing.T) {
	t.Parallel()

	p := pretty.New(
		pretty.Rule{Prefix: "example.com/collections.", Alias: "Vec"},
		pretty.Rule{Prefix: "example.com/collections.", Alias: "Deque"},
		pretty.Rule{Prefix: "example.com/cells.", Alias: "Cell"},
	)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"front strip", "example.com/collections.Vec[int32]", "Vec[int32]"},
		{"second alias same prefix", "example.com/collections.Deque[byte]", "Deque[byte]"},
		{"nested args strip too", "example.com/collections.Vec[example.com/collections.Vec[uint8]]", "Vec[Vec[uint8]]"},
		{"mixed rules", "example.com/collections.Vec[example.com/cells.Cell]", "Vec[Cell]"},
		{"alias does not follow", "example.com/collections.Stack[int]", "example.com/collections.Stack[int]"},
		{"unrecognized passes through", "map[string]int", "map[string]int"},
		{"already short", "Vec[int32]", "Vec[int32]"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, p.Apply(tt.input))
		})
	}
}

func TestApplyIdentityIsSameString(t *testing.T) {
	t.Parallel()

	p := pretty.New(pretty.Rule{Prefix: "example.com/collections.", Alias: "Vec"})

	in := "some/other/path.Thing"
	out := p.Apply(in)
	assert.Equal(t, in, out)
}

func TestApplyOrderMatters(t *testing.T) {
	t.Parallel()

	// Both rules fire at the front; the first declared one wins.
	first := pretty.New(
		pretty.Rule{Prefix: "a.b.", Alias: "C"},
		pretty.Rule{Prefix: "a.", Alias: "b"},
	)
	assert.Equal(t, "Cx", first.Apply("a.b.Cx"))

	flipped := pretty.New(
		pretty.Rule{Prefix: "a.", Alias: "b"},
		pretty.Rule{Prefix: "a.b.", Alias: "C"},
	)
	assert.Equal(t, "b.Cx", flipped.Apply("a.b.Cx"))
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	p := pretty.Default()

	assert.Equal(t, "Ty", p.Apply("github.com/purpleposeidon/ezty.Ty"))
	assert.Equal(t, "Vec[int32]", p.Apply("github.com/purpleposeidon/ezty/collections.Vec[int32]"))
	assert.Equal(t, "Pair[string,int]", p.Apply("github.com/purpleposeidon/ezty/collections.Pair[string,int]"))
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	yaml := `
rules:
  - prefix: example.com/collections.
    alias: Vec
  - prefix: example.com/cells.
    alias: Cell
`
	rules, err := pretty.ParseRules([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, pretty.Rule{Prefix: "example.com/collections.", Alias: "Vec"}, rules[0])
	assert.Equal(t, pretty.Rule{Prefix: "example.com/cells.", Alias: "Cell"}, rules[1])

	p := pretty.New(rules...)
	assert.Equal(t, "Vec[byte]", p.Apply("example.com/collections.Vec[byte]"))
}

func TestParseRulesRejectsEmptyPrefix(t *testing.T) {
	t.Parallel()

	_, err := pretty.ParseRules([]byte("rules:\n  - alias: Vec\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty prefix")
}

func TestParseRulesBadYAML(t *testing.T) {
	t.Parallel()

	_, err := pretty.ParseRules([]byte("rules: {nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules YAML")
}

func TestLoadRulesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := pretty.LoadRules("does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rules file")
}
