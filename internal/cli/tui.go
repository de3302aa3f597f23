package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkoenig/dobble/pkg/packing"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// packingDescriptions explains each packing family for the picker.
var packingDescriptions = map[packing.Type]string{
	packing.TypeCCI:  "equal circles",
	packing.TypeCCIB: "radii ~ i^(-1/5), mild size spread",
	packing.TypeCCIC: "radii ~ i^(-2/3), strong size spread",
	packing.TypeCCIR: "radii ~ sqrt(i)",
	packing.TypeCCIS: "radii ~ i^(-1/2)",
}

// PackingListModel is the bubbletea model for interactive packing selection.
type PackingListModel struct {
	Types    []packing.Type
	Cursor   int
	Selected *packing.Type
}

// newPackingListModel creates a packing list model over all known types.
func newPackingListModel() PackingListModel {
	return PackingListModel{Types: packing.Types()}
}

func (m PackingListModel) Init() tea.Cmd {
	return nil
}

func (m PackingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Types)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Types[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PackingListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Packing"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, typ := range m.Types {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		counts := packing.Counts(typ)
		span := "—"
		if len(counts) > 0 {
			span = fmt.Sprintf("%d–%d symbols", counts[0], counts[len(counts)-1])
		}

		line := fmt.Sprintf("%s%-6s %-38s %s", cursor, typ,
			packingDescriptions[typ], listDimStyle.Render(span))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
