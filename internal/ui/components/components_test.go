package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()

	light, err := ThemeByName("")
	require.NoError(t, err)
	require.Equal(t, "light", light.Name)

	dark, err := ThemeByName(" Dark ")
	require.NoError(t, err)
	require.Equal(t, "dark", dark.Name)
	require.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)

	_, err = ThemeByName("solarized")
	require.ErrorContains(t, err, "unknown theme")
}

func TestStackJoinsChildren(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("a"), nil, NewText("b")).WithGap(2).View()
	require.Equal(t, "a  b", row)

	column := VStack(NewText("a"), NewText("b")).View()
	require.Equal(t, []string{"a", "b"}, strings.Split(column, "\n"))

	spaced := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	require.Equal(t, 3, lipgloss.Height(spaced))

	require.Empty(t, VStack().View())
}

func TestCardHonoursWidth(t *testing.T) {
	t.Parallel()

	view := NewCard(NewText("hello")).WithTitle("Greeting").WithWidth(20).View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
	assert.Contains(t, view, "Greeting")
	assert.Contains(t, view, "hello")
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	button := NewButton("›").WithDisabled(true).WithActive(true)
	require.True(t, button.IsDisabled())
	require.True(t, button.IsActive())
	require.Equal(t, "›", button.Label())
	require.Contains(t, button.View(), "›")
}

func TestBadgeRendersText(t *testing.T) {
	t.Parallel()

	badge := WarningBadge("paused")
	require.Equal(t, "paused", badge.Text())
	require.Contains(t, badge.View(), "paused")
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	t.Parallel()

	var calls []string
	base := NewBaseComponent()
	base.SetAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		calls = append(calls, "first")
		return s
	})
	base.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		calls = append(calls, "second")
		return s
	})

	base.ComputeStyle(DefaultTheme())
	require.Equal(t, []string{"first", "second"}, calls)
}
