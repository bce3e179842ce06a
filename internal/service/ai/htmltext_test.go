package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"portal/backend/internal/service/ai"
)

func TestHTMLToText_StripsTags(t *testing.T) {
	text := ai.HTMLToText("<p>Shipped the <b>billing</b> migration.</p>")
	require.Equal(t, "Shipped the billing migration.", text)
}

func TestHTMLToText_DropsScriptAndStyle(t *testing.T) {
	text := ai.HTMLToText("<p>visible</p><script>alert(1)</script><style>p{}</style>")
	require.Equal(t, "visible", text)
}

func TestHTMLToText_PlainTextPassthrough(t *testing.T) {
	require.Equal(t, "no markup here", ai.HTMLToText("no markup here"))
}

func TestToPlainText_CollapsesWhitespace(t *testing.T) {
	text := ai.ToPlainText("<ul><li>one</li><li>two</li></ul>")
	require.Equal(t, "one two", text)
}

func TestToPlainText_RemovesNonBreakingSpace(t *testing.T) {
	text := ai.ToPlainText("a\u00a0\u00a0b   c")
	require.Equal(t, "a b c", text)
}
