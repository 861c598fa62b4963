package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask      string `yaml:"add_task"`
	EditTask     string `yaml:"edit_task"`
	DeleteTask   string `yaml:"delete_task"`
	ChangeStatus string `yaml:"change_status"`
	ViewTask     string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Listing
	Search       string `yaml:"search"`
	Filter       string `yaml:"filter"`
	ResetFilters string `yaml:"reset_filters"`
	PageSize     string `yaml:"page_size"`
	Refresh      string `yaml:"refresh"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`
	PrevPage string `yaml:"prev_page"`
	NextPage string `yaml:"next_page"`

	// Session
	Logout string `yaml:"logout"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:      "a",
		EditTask:     "e",
		DeleteTask:   "d",
		ChangeStatus: "s",
		ViewTask:     "enter",
		SaveForm:     "ctrl+s",

		// Listing
		Search:       "/",
		Filter:       "f",
		ResetFilters: "F",
		PageSize:     "p",
		Refresh:      "r",

		// Navigation
		PrevTask: "k",
		NextTask: "j",
		PrevPage: "h",
		NextPage: "l",

		Logout: "L",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// bindings pairs every key mapping field so defaults can be applied in one pass
func (k *KeyMappings) bindings() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.DeleteTask, &k.ChangeStatus, &k.ViewTask,
		&k.SaveForm,
		&k.Search, &k.Filter, &k.ResetFilters, &k.PageSize, &k.Refresh,
		&k.PrevTask, &k.NextTask, &k.PrevPage, &k.NextPage,
		&k.Logout,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.bindings()

	for i, binding := range k.bindings() {
		if *binding == "" {
			*binding = *base[i]
		}
	}
}
