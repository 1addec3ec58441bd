package usecase

import "regexp"

// RoutingPolicy decides which gateway path a chat input takes. The
// heuristics are policy, not contract: thresholds and keyword sets are
// expected to be tuned without touching the services.
type RoutingPolicy struct {
	// ImageRequest routes matching inputs to image generation
	ImageRequest *regexp.Regexp
	// ComplexKeywords routes matching inputs to extended reasoning
	ComplexKeywords *regexp.Regexp
	// ComplexLength routes inputs longer than this to extended reasoning
	ComplexLength int
	// ConsultationLimit caps user messages per conversation; 0 disables
	ConsultationLimit int
}

// DefaultRoutingPolicy returns the production heuristics
func DefaultRoutingPolicy() RoutingPolicy {
	return RoutingPolicy{
		ImageRequest:      regexp.MustCompile(`(?i)imagen|foto|render|diagrama|visualiza|genera`),
		ComplexKeywords:   regexp.MustCompile(`(?i)calcula|diseña|proyecto|analiza|ingeniería`),
		ComplexLength:     200,
		ConsultationLimit: 20,
	}
}

// IsImageRequest reports whether the input asks for a visualization
func (p RoutingPolicy) IsImageRequest(input string) bool {
	return p.ImageRequest != nil && p.ImageRequest.MatchString(input)
}

// IsComplex reports whether the input deserves an extended reasoning budget
func (p RoutingPolicy) IsComplex(input string) bool {
	if p.ComplexLength > 0 && len(input) > p.ComplexLength {
		return true
	}
	return p.ComplexKeywords != nil && p.ComplexKeywords.MatchString(input)
}
