package mcpserver

import (
	"context"
	"testing"

	"github.com/jwulff/zen/internal/iching"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	engine := iching.NewEngine(iching.NewCatalog(), iching.NewRandSource(3))
	return NewServer(engine, "test", nil)
}

func TestHandleLookupFound(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, LookupArgs{Upper: 6, Lower: 6})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "坎", resp.Hexagram.Name)
	assert.Equal(t, "䷜", resp.Hexagram.Glyph)
}

func TestHandleLookupFallback(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, LookupArgs{Upper: 5, Lower: 2})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Equal(t, "上巽下兑", resp.Hexagram.Name)
}

func TestHandleLookupInvalid(t *testing.T) {
	s := newTestServer()

	_, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, LookupArgs{Upper: 9, Lower: 1})
	assert.ErrorIs(t, err, iching.ErrInvalidTrigram)
}

func TestHandleDraw(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleDraw(context.Background(), mcp.CallToolRequest{}, DrawArgs{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.MovingLine, 1)
	assert.LessOrEqual(t, resp.MovingLine, 6)
	assert.Len(t, resp.Lines, 6)
	assert.Equal(t, resp.Hexagram.LineTexts[resp.MovingLine-1], resp.MovingLineText)
}
