package document

// ReadRequest asks for the text content of a document file.
type ReadRequest struct {
	Path string `json:"path"`
}

// ReadResult is the extracted linear text plus basic file facts.
type ReadResult struct {
	Text  string `json:"text"`
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Size  int64  `json:"size"`
}

// ValidateRequest asks whether a file is a readable document.
type ValidateRequest struct {
	Path string `json:"path"`
}

// ValidateResult reports the validation verdict. An invalid file is a
// result, not a processing error.
type ValidateResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
