// Package prompt builds the fixed summarization prompt. Keeping the template
// here lets prompt construction be tested without invoking the model.
package prompt

// header is the fixed instructional template. The normalized transcript is
// interpolated verbatim after it.
const header = `Summarize the following transcript into one or more clear and
readable paragraphs. Speakers in the transcript could be denoted by their name,
or by "spk_x", where x is a number. These represent distinct speakers in the
conversation. When you refer to a speaker, you may refer to them by "Speaker 1"
in the case of "spk_1", "Speaker 2" in the case of "spk_2", and so forth.
When you summarize, capture any ideas discussed, any hot topics you identify,
or any other interesting parts of the conversation between the speakers.
At the end of your summary, give a bullet point list of the key action
items, to-do's, and followup activities:`

// Build returns the prompt for one normalized transcript.
func Build(transcript string) string {
	return header + "\n\n" + transcript
}
