package preferences

// Language is a UI language code.
type Language string

const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used when a user has no stored preference.
const DefaultLanguage = LanguageTurkish

// Valid reports whether the language is one the UI supports.
func (l Language) Valid() bool {
	return l == LanguageTurkish || l == LanguageEnglish
}

// UserPreferences is the single per-user preference row. Last write wins.
type UserPreferences struct {
	UserID    string   `json:"userId" dynamodbav:"userId"`
	Language  Language `json:"language" dynamodbav:"language"`
	UpdatedAt string   `json:"updatedAt" dynamodbav:"updatedAt"`
}
