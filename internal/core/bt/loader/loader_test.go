package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/behaviourtree/internal/core/bt"
)

const yamlTree = `
name: Robber
children:
  - name: Steal something
    type: Sequence
    children:
      - name: Go to diamond
        type: leaf
        action: succeed
      - name: Go to van
        type: leaf
        action: succeed
  - name: Eat something
    type: selector
    children:
      - name: Buy pizza
        type: Leaf
        action: fail
      - name: Steal pizza
        type: leaf
        action: counter
        params:
          after: 2
`

func testRegistry() Registry {
	r := NewRegistry()
	r.Register("succeed", Static(bt.StatusSuccess))
	r.Register("fail", Static(bt.StatusFailure))
	r.Register("counter", func(params map[string]any) (bt.TickFunc, error) {
		after := IntParam(params, "after", 1)
		calls := 0
		return func() bt.Status {
			calls++
			if calls < after {
				return bt.StatusRunning
			}
			return bt.StatusSuccess
		}, nil
	})
	return r
}

func TestLoadYAMLAndBuild(t *testing.T) {
	def, err := LoadYAML(strings.NewReader(yamlTree))
	require.NoError(t, err)

	tree, err := def.Build(testRegistry())
	require.NoError(t, err)

	require.Equal(t, []string{
		"Robber",
		"-Steal something",
		"--Go to diamond",
		"--Go to van",
		"-Eat something",
		"--Buy pizza",
		"--Steal pizza",
	}, tree.Outline())

	steal := tree.Children()[0]
	require.IsType(t, &bt.Sequence{}, steal)
	require.IsType(t, &bt.Selector{}, tree.Children()[1])

	require.Equal(t, bt.StatusRunning, tree.Tick())
	require.Equal(t, 1, steal.CurrentChild())
	require.Equal(t, bt.StatusSuccess, tree.Tick())
	require.Equal(t, 0, steal.CurrentChild())
}

func TestLoadJSON(t *testing.T) {
	const doc = `{
  "name": "json",
  "children": [
    {"name": "root", "type": "node", "children": [
      {"name": "wait", "type": "leaf", "action": "counter", "params": {"after": 3}}
    ]}
  ]
}`
	def, err := LoadJSON(strings.NewReader(doc))
	require.NoError(t, err)

	tree, err := def.Build(testRegistry())
	require.NoError(t, err)

	require.Equal(t, bt.StatusRunning, tree.Tick())
	require.Equal(t, bt.StatusRunning, tree.Tick())
	require.Equal(t, bt.StatusSuccess, tree.Tick())
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		def  Definition
		want error
	}{
		{
			name: "empty name",
			def:  Definition{Children: []*NodeDefinition{{Type: "leaf"}}},
			want: ErrEmptyName,
		},
		{
			name: "nil child",
			def:  Definition{Children: []*NodeDefinition{nil}},
			want: ErrEmptyName,
		},
		{
			name: "unknown type",
			def:  Definition{Children: []*NodeDefinition{{Name: "p", Type: "parallel"}}},
			want: ErrUnknownNodeType,
		},
		{
			name: "leaf with children",
			def: Definition{Children: []*NodeDefinition{{
				Name: "l", Type: "leaf", Action: "succeed",
				Children: []*NodeDefinition{{Name: "x", Type: "leaf"}},
			}}},
			want: ErrLeafWithChildren,
		},
		{
			name: "disabled composite",
			def: Definition{Children: []*NodeDefinition{{
				Name: "s", Type: "selector", Disabled: true,
				Children: []*NodeDefinition{{Name: "l", Type: "leaf", Action: "succeed"}},
			}}},
			want: ErrDisabledComposite,
		},
		{
			name: "unknown action",
			def: Definition{Children: []*NodeDefinition{{
				Name: "s", Type: "sequence",
				Children: []*NodeDefinition{{Name: "l", Type: "leaf", Action: "teleport"}},
			}}},
			want: ErrUnknownAction,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.def.Build(testRegistry())
			require.Error(t, err)
			require.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestUnwiredLeavesFailSafe(t *testing.T) {
	def := Definition{Children: []*NodeDefinition{{
		Name: "goals", Type: "selector",
		Children: []*NodeDefinition{
			{Name: "todo", Type: "leaf"},
			{Name: "off", Type: "leaf", Action: "succeed", Disabled: true},
		},
	}}}
	tree, err := def.Build(nil)
	require.NoError(t, err)

	require.Equal(t, bt.StatusRunning, tree.Tick())
	require.Equal(t, bt.StatusFailure, tree.Tick())
	require.Equal(t, bt.StatusRunning, tree.Tick())
}

func TestEmptyCompositeIsAccepted(t *testing.T) {
	def := Definition{Name: "hollow", Children: []*NodeDefinition{{Name: "nothing", Type: "sequence"}}}
	tree, err := def.Build(testRegistry())
	require.NoError(t, err)
	require.Equal(t, bt.StatusFailure, tree.Tick())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlTree), 0o600))
	def, err := LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, "Robber", def.Name)

	jsonPath := filepath.Join(dir, "tree.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"j","children":[]}`), 0o600))
	def, err = LoadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, "j", def.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":`), 0o600))
	_, err = LoadFile(jsonPath)
	require.Error(t, err)
}

func TestRegistryNames(t *testing.T) {
	r := testRegistry()
	require.Equal(t, []string{"counter", "fail", "succeed"}, r.Names())

	_, err := r.New("nope", nil)
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestParams(t *testing.T) {
	params := map[string]any{
		"int":    3,
		"float":  4.0,
		"string": "van",
	}
	require.Equal(t, 3, IntParam(params, "int", 0))
	require.Equal(t, 4, IntParam(params, "float", 0))
	require.Equal(t, 7, IntParam(params, "missing", 7))
	require.Equal(t, 7, IntParam(params, "string", 7))
	require.Equal(t, "van", StringParam(params, "string", ""))
	require.Equal(t, "x", StringParam(nil, "string", "x"))
}
