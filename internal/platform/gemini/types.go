package gemini

// promptData is the data passed to the prompt template.
type promptData struct {
	SourceText string
}
