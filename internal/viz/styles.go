package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	tabOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true).Padding(0, 1).Underline(true)
	derivStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)
