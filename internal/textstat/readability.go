// Package textstat implements the small readability statistics used by
// the content analyzer and the content quality checker.
package textstat

import (
	"regexp"
	"strings"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordPattern   = regexp.MustCompile(`\b[a-zA-Z]+\b`)
)

// Readability is the result of a Flesch Reading Ease computation.
type Readability struct {
	Score     float64
	Grade     string
	Words     int
	Sentences int
	Syllables int
}

// FleschReadingEase computes the Flesch Reading Ease score of the given
// text, clamped to [0,100]. Empty or wordless text scores zero.
func FleschReadingEase(text string) Readability {
	sentences := SplitSentences(text)
	words := SplitWords(text)

	if len(sentences) == 0 || len(words) == 0 {
		return Readability{Grade: GradeFor(0)}
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Readability{
		Score:     score,
		Grade:     GradeFor(score),
		Words:     len(words),
		Sentences: len(sentences),
		Syllables: syllables,
	}
}

// GradeFor maps a Flesch score to its reading-difficulty label.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

// SplitSentences splits text on terminal punctuation, dropping blanks.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitWords extracts alphabetic word tokens from text.
func SplitWords(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// CountSyllables approximates the syllable count of a single word by
// counting vowel groups. A trailing silent "e" is discounted when at
// least one syllable remains; every word counts at least one.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
