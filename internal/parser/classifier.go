package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// Classify scores the sheet's headers against every signature and returns
// the best record type, or unknown when no candidate reaches its own
// confidence floor. It never fails; a sheet with no recognizable headers is
// simply unknown. A manual override by the caller always takes precedence
// over this result.
func Classify(headers []string, filename string) ClassificationResult {
	normalized := normalizeHeaders(headers)
	filenameLower := strings.ToLower(filename)

	result := ClassificationResult{
		Type:   model.RecordTypeUnknown,
		Scores: make([]TypeScore, 0, len(Signatures)),
	}

	best := -1
	for _, sig := range Signatures {
		score := scoreSignature(sig, normalized, filenameLower)
		result.Scores = append(result.Scores, score)
		// Strictly-greater keeps the first declared signature on ties.
		if best < 0 || score.Confidence > result.Scores[best].Confidence {
			best = len(result.Scores) - 1
		}
	}

	winner := result.Scores[best]
	sig := Signatures[best]
	if winner.Confidence < sig.MinConfidence {
		return result
	}

	result.Type = winner.Type
	result.Confidence = winner.Confidence
	result.Indicators = winner.Indicators
	return result
}

// scoreSignature applies the weighted fragment counts for one candidate.
func scoreSignature(sig Signature, headers []string, filenameLower string) TypeScore {
	score := TypeScore{Type: sig.Type}

	requiredMatches := 0
	for _, req := range sig.Required {
		if anyHeaderContains(headers, req) {
			requiredMatches++
			score.Indicators = append(score.Indicators, fmt.Sprintf("Required: %s", req))
		}
	}
	// No partial credit without at least one required hit.
	if requiredMatches == 0 {
		score.Indicators = nil
		return score
	}

	confidence := float64(requiredMatches) / float64(len(sig.Required)) * requiredWeight

	strongMatches := 0
	for _, ind := range sig.Strong {
		if anyHeaderContains(headers, ind) {
			strongMatches++
			score.Indicators = append(score.Indicators, fmt.Sprintf("Strong: %s", ind))
		}
	}
	confidence += float64(strongMatches) / float64(len(sig.Strong)) * strongWeight

	for _, channel := range sig.Channel {
		if strings.Contains(filenameLower, channel) || anyHeaderContains(headers, channel) {
			confidence += channelBonus
			score.Indicators = append(score.Indicators, fmt.Sprintf("Channel: %s", channel))
			break
		}
	}

	// The weight sum accumulates float noise (0.6+0.3+0.1 != 1.0 exactly);
	// round it away so full matches report exactly 1.0.
	confidence = math.Round(confidence*1e9) / 1e9
	if confidence > 1.0 {
		confidence = 1.0
	}
	score.Confidence = confidence
	return score
}

// normalizeHeaders lowercases and trims headers for fragment matching.
func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

func anyHeaderContains(headers []string, fragment string) bool {
	for _, h := range headers {
		if strings.Contains(h, fragment) {
			return true
		}
	}
	return false
}
