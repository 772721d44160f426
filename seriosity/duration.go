package seriosity

import "math"

// Average speaking rate of 150 words per minute, i.e. 2.5 words per second.
// The real audio duration is never measured; this is a proxy derived from
// the transcript alone.
const wordsPerSecond = 2.5

// EstimateSpokenSeconds estimates how long the transcript took to speak
func EstimateSpokenSeconds(text string) int {
	wordCount := CountWords(text)
	if wordCount == 0 {
		return 0
	}
	return int(math.Round(float64(wordCount) / wordsPerSecond))
}
