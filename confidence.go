package linkdrop

// Confidence scores an analysis result between 0 and 1. The base score is
// 0.5; a non-generic content type adds 0.3; a meaningful title (present
// and distinct from the bare domain), a description, a thumbnail and an
// author each add 0.1. The sum is capped at 1.0.
func Confidence(ct ContentType, md *Metadata) float64 {
	score := 0.5
	if !ct.Generic() {
		score += 0.3
	}
	if md != nil {
		if t := GetString(md.Title); t != "" && t != md.Domain {
			score += 0.1
		}
		if GetString(md.Description) != "" {
			score += 0.1
		}
		if GetString(md.ThumbnailURL) != "" {
			score += 0.1
		}
		if GetString(md.Author) != "" {
			score += 0.1
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
