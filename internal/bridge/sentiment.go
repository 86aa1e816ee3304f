package bridge

import "strings"

// #region sentiment

var negativeWords = []string{"bad", "hate", "stupid", "ugly", "wrong"}
var positiveWords = []string{"good", "great", "love", "thanks", "smart"}

// SentimentSignal maps user text to a raw stimulus value: -1.5 for negative
// wording, +1.5 for positive wording, +0.5 otherwise (any interaction is
// mildly positive). The engine clamps the value into [-1, 1].
func SentimentSignal(text string) float64 {
	lower := strings.ToLower(text)
	signal := 0.5
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			signal = -1.5
			break
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			signal = 1.5
			break
		}
	}
	return signal
}

// #endregion sentiment
