package tui

// UI Text Constants
const (
	TextTitle = "🍰 Recipes"

	TextIdle    = "👋 Showing demo recipes"
	TextLoading = "⏳ Loading %s..."
	TextLoaded  = "✅ %d recipes"
	TextErrored = "❌ Last reload failed"

	TextEmptyList = "No recipes to show."
	TextAlertHint = "Press 'enter' to dismiss"

	TextFooter = "r: all | e: empty | m: malformed | d: demo | ↑/↓: move | q: quit"
)
