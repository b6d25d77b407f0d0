package api

type Settings struct {
	Provider         string `json:"provider"`
	APIKey           string `json:"api_key,omitempty"` // masked on read
	Model            string `json:"model"`
	TonePreference   int    `json:"tone_preference"`
	DetailPreference int    `json:"detail_preference"`
}

type SettingsUpdate struct {
	Provider         *string `json:"provider,omitempty"`
	APIKey           *string `json:"api_key,omitempty"`
	Model            *string `json:"model,omitempty"`
	TonePreference   *int    `json:"tone_preference,omitempty"`
	DetailPreference *int    `json:"detail_preference,omitempty"`
}

type Glossary struct {
	TestType string            `json:"test_type"`
	Glossary map[string]string `json:"glossary"`
}

type Health struct {
	Status string `json:"status"`
}
