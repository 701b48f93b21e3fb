package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Session titles are derived from the first message, capped at this length.
	SessionTitleMaxLen = 50

	// Text uploads are truncated to this many characters before analysis.
	AnalysisTextLimit = 5000

	PlatformName    = "Agentic AI Platform"
	PlatformVersion = "1.0.0"

	DefaultSystemPrompt = `You are a highly advanced agentic AI assistant specializing in web development, coding, analysis, and creative problem-solving. You provide comprehensive, accurate, and innovative solutions.`

	AnalyzerSystemPrompt = `You are an AI document analyzer. Analyze uploaded documents and provide comprehensive insights.`
)
