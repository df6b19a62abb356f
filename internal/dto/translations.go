package dto

// TranslationsResponse is the body of GET /translations.
type TranslationsResponse struct {
	Language  string            `json:"language"`
	Available []string          `json:"available"`
	Strings   map[string]string `json:"strings"`
}

// LanguageResponse is the body of PUT /language/:lang.
type LanguageResponse struct {
	Language string `json:"language"`
}
