// Package normalize collapses the transcription service's word-level JSON
// into speaker-grouped plaintext.
//
// Each maximal run of consecutive pronunciation items sharing a speaker
// label becomes one line "<speaker_label>: <joined text>". Punctuation never
// starts a new run. Speaker labels are opaque strings (e.g. spk_0); mapping
// them to readable names is prompt construction's concern, not the stored
// transcript's.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize parses raw transcript JSON and returns the speaker-grouped
// plaintext, each line newline-terminated. An empty items list yields the
// empty string. Malformed JSON is the only error. Pure function: same input,
// same output, no side effects.
func Normalize(raw []byte) (string, error) {
	var t RawTranscript
	if err := json.Unmarshal(raw, &t); err != nil {
		return "", fmt.Errorf("transcript is not valid JSON: %w", err)
	}
	return strings.Join(appendNewlines(Lines(&t)), ""), nil
}

// Lines runs the single left-to-right pass over the item sequence and
// returns one line per speaker run, without trailing newlines.
//
// The final line uses the last speaker label the pass assigned, tracked
// explicitly. Text accumulated before any speaker was ever assigned
// (punctuation preceding the first pronunciation item) emits no line: a
// line without a speaker attribution would be unusable downstream.
func Lines(t *RawTranscript) []string {
	var (
		lines          []string
		currentSpeaker string
		currentText    string
		speakerSeen    bool
	)

	for _, item := range t.Results.Items {
		switch item.Type {
		case ItemTypePronunciation:
			if len(item.Alternatives) == 0 {
				continue
			}
			word := item.Alternatives[0].Content

			if !speakerSeen || item.SpeakerLabel != currentSpeaker {
				if speakerSeen && currentText != "" {
					lines = append(lines, currentSpeaker+": "+strings.TrimSpace(currentText))
				}
				currentSpeaker = item.SpeakerLabel
				currentText = word
				speakerSeen = true
			} else {
				currentText += " " + word
			}

		case ItemTypePunctuation:
			if len(item.Alternatives) == 0 {
				continue
			}
			// Attaches to the preceding word, no separating space.
			currentText += item.Alternatives[0].Content
		}
	}

	if speakerSeen && currentText != "" {
		lines = append(lines, currentSpeaker+": "+strings.TrimSpace(currentText))
	}

	return lines
}

func appendNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
