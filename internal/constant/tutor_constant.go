package constant

const (
	// StorageKey is the fixed identifier the whole session blob is persisted
	// under. Bump the suffix when the blob shape changes incompatibly.
	StorageKey = "omnitutor:session:v29"

	// SessionDirtyTopic carries persist requests from mutating services to
	// the consumer that writes the blob out.
	SessionDirtyTopic = "SESSION_DIRTY"

	// SummarizePromptPrefix heads the canned summarize request built over the
	// focused packet contents.
	SummarizePromptPrefix = "Summarize these notes in concise bullets:"

	// SummarizeChatMarker is the user-side transcript entry recorded for a
	// summarize action in place of a typed prompt.
	SummarizeChatMarker = "[Summarize Focus]"
)
