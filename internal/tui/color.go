package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black     = lipgloss.Color("#000000")
	Red       = lipgloss.Color("#FF5353")
	Orange    = lipgloss.Color("214")
	Yellow    = lipgloss.Color("#DBBD70")
	Green     = lipgloss.Color("34")
	Turquoise = lipgloss.Color("86")
	Blue      = lipgloss.Color("63")
	DeepBlue  = lipgloss.Color("39")
	Violet    = lipgloss.Color("13")
	Grey      = lipgloss.Color("#737373")
	LightGrey = lipgloss.Color("245")
	White     = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(Turquoise), Light: string(Green)}
	WarnLogLevel  = Yellow
	ErrorLogLevel = Red

	LogAttributeKey = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(LightGrey)}

	ActiveTabColor   = DeepBlue
	InactiveTabColor = Grey

	TitleColor = lipgloss.AdaptiveColor{
		Dark:  "",
		Light: "",
	}

	SelectedBackground = lipgloss.Color("110")
	SelectedForeground = Black
)
