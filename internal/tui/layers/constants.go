package layers

const (
	FormMinWidth = 50
	FormMaxWidth = 90

	AuthFormWidth = 56

	PickerWidth         = 36
	PickerChromeHeight  = 4 // title, spacing, footer
	ConfirmWidth        = 50
	HelpWidth           = 52
	DetailMinWidth      = 50
	DetailMaxWidth      = 100
	DetailChromeHeight  = 8 // title, metadata, spacing, footer, border
	DetailMinBodyHeight = 5
)
