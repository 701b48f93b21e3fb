package constant

// ModelCatalog is the static registry of supported provider/model pairs.
// Nothing validates at request time that a chosen model is listed here.
var ModelCatalog = map[string][]string{
	"openai": {
		"gpt-5", "gpt-5-mini", "gpt-5-nano", "gpt-4.1", "gpt-4.1-mini",
		"gpt-4.1-nano", "o4-mini", "o3-mini", "o3", "o1-mini", "gpt-4o-mini",
		"gpt-4.5-preview", "gpt-4o", "o1", "o1-pro",
	},
	"anthropic": {
		"claude-sonnet-4-20250514", "claude-opus-4-20250514", "claude-3-7-sonnet-20250219",
		"claude-3-5-haiku-20241022", "claude-3-5-sonnet-20241022",
	},
	"gemini": {
		"gemini-2.5-flash-preview-04-17", "gemini-2.5-pro-preview-05-06", "gemini-2.0-flash",
		"gemini-2.0-flash-preview-image-generation", "gemini-2.0-flash-lite", "gemini-1.5-flash",
		"gemini-1.5-flash-8b", "gemini-1.5-pro",
	},
}

const (
	DefaultModelProvider = "anthropic"
	DefaultModelName     = "claude-sonnet-4-20250514"
)
