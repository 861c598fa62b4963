package theme

import (
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight   string
	Background  string
	Subtle      string
	Normal      string
	Title       string
	Create      string
	Edit        string
	Delete      string
	TableBorder string
	HeaderFg    string
	SelectedFg  string
	SelectedBg  string
	InfoFg      string
	InfoBg      string
	SuccessFg   string
	SuccessBg   string
	WarningFg   string
	WarningBg   string
	ErrorFg     string
	ErrorBg     string
	StatusBarBg string
	StatusBarFg string

	statusColors = map[models.Status]string{}
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	TableBorder = colors.TableBorder
	HeaderFg = colors.HeaderFg
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarFg = colors.StatusBarText

	statusColors = map[models.Status]string{
		models.StatusNew:        colors.StatusNew,
		models.StatusInProgress: colors.StatusInProgress,
		models.StatusCompleted:  colors.StatusCompleted,
	}
}

// StatusColor returns the badge color for status, falling back to Normal
func StatusColor(status models.Status) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return Normal
}
