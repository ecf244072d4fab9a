package generate

import "codeberg.org/justcopy/server/internal/copywriter"

// request body for copy generation
type Request struct {
	Prompt  string `json:"prompt" form:"prompt" binding:"required"`
	Options any    `json:"options" form:"-"` // accepted for compatibility, never consulted
}

// response body for copy generation
type Response struct {
	Success  bool     `json:"success"`
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

type Metadata struct {
	WordsGenerated int    `json:"wordsGenerated"`
	Timestamp      string `json:"timestamp"`
}

// keeps the options bag when it is an object; any other shape is dropped
func (r Request) options() copywriter.Options {
	bag, ok := r.Options.(map[string]any)
	if !ok {
		return nil
	}

	return copywriter.Options(bag)
}
