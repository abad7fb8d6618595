package injector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/behaviourtree/internal/core/agent"
	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

func TestInitializeManagerWiresLogger(t *testing.T) {
	var buf bytes.Buffer
	m := InitializeManager(LoggerConfig{Level: log.LevelInfo, Encoding: "json", Writer: &buf})
	require.NotNil(t, m)
	require.NotNil(t, m.Events())

	tree := bt.NewTree("t")
	tree.AddChild(bt.NewNode("idle"))
	_, err := m.Spawn(agent.Config{Name: "wired"}, tree)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"agent":"wired"`)
}
