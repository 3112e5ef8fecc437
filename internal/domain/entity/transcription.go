package entity

// TranscriptionResult is the text extracted from one audio upload.
type TranscriptionResult struct {
	Text string `json:"text"`
}
