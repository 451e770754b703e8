package normalize

// RawTranscript is the JSON structure the transcription service writes to
// transcription/<job>.json. Only the fields the normalizer reads are mapped.
type RawTranscript struct {
	Results Results `json:"results"`
}

// Results holds the word-level item sequence.
type Results struct {
	Items []Item `json:"items"`
}

// Item types. Pronunciation items carry a speaker label; punctuation items
// attach to the preceding word and have no speaker attribution of their own.
const (
	ItemTypePronunciation = "pronunciation"
	ItemTypePunctuation   = "punctuation"
)

// Item is one timed word or punctuation mark.
type Item struct {
	Type         string        `json:"type"`
	StartTime    string        `json:"start_time,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	SpeakerLabel string        `json:"speaker_label,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one candidate reading of an item. The service emits
// alternatives[0] only, since job submission disables alternatives.
type Alternative struct {
	Confidence string `json:"confidence,omitempty"`
	Content    string `json:"content"`
}
