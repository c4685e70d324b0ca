package interfaces

// Preferences holds values remembered between sessions
type Preferences struct {
	ProjectPath string `json:"project_path,omitempty"`
	Folder      string `json:"folder,omitempty"`
	TargetURL   string `json:"target_url,omitempty"`
}

// Storage persists user preferences
type Storage interface {
	// LoadPreferences returns saved preferences, or empty ones if none exist
	LoadPreferences() (Preferences, error)

	// SavePreferences stores preferences
	SavePreferences(prefs Preferences) error
}
