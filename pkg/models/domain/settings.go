package domain

// AppSettings holds the user-tunable application settings. The API key is
// stored verbatim; masking happens at the API boundary.
type AppSettings struct {
	Provider         string // gemini
	APIKey           string
	Model            string
	TonePreference   int // 1 (clinical) .. 5 (reassuring)
	DetailPreference int // 1 (brief) .. 5 (thorough)
}

// SettingsUpdate is a partial update; nil fields are left untouched.
type SettingsUpdate struct {
	Provider         *string
	APIKey           *string
	Model            *string
	TonePreference   *int
	DetailPreference *int
}
