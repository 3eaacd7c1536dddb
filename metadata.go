package linkdrop

// Metadata is the normalized metadata record for a captured URL.
//
// Every field except Domain is optional. Pointer fields distinguish
// "absent" from "empty": an adapter that did not see a title leaves Title
// nil, while an enhancer that deliberately clears a useless title sets it
// to a pointer to the empty string. The merge step only overwrites on
// presence, never on emptiness, so that distinction is load-bearing.
//
// The same shape serves both roles in the pipeline: the partial record
// produced by a single source adapter and the final merged record
// attached to an analysis result.
type Metadata struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"` // primary body/caption text, distinct from Description
	Description *string `json:"description,omitempty"`

	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`

	Author      *string `json:"author,omitempty"`
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`

	Domain        string  `json:"domain"`
	PublishedDate *string `json:"publishedDate,omitempty"` // raw upstream value, not normalized
	Duration      *string `json:"duration,omitempty"`

	// Engagement counts.
	Likes    *int `json:"likes,omitempty"`
	Replies  *int `json:"replies,omitempty"`
	Retweets *int `json:"retweets,omitempty"`
	Views    *int `json:"views,omitempty"`
	Stars    *int `json:"stars,omitempty"`
	Forks    *int `json:"forks,omitempty"`

	// Commerce.
	Price   *string  `json:"price,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
	Reviews *int     `json:"reviews,omitempty"`

	// Files.
	FileSize  *string `json:"fileSize,omitempty"`
	PageCount *int    `json:"pageCount,omitempty"`

	// Video.
	VideoURL    *string `json:"videoUrl,omitempty"`
	VideoType   *string `json:"videoType,omitempty"`
	VideoWidth  *int    `json:"videoWidth,omitempty"`
	VideoHeight *int    `json:"videoHeight,omitempty"`

	// ExtraData holds source-specific and auxiliary values, e.g. platform
	// subfields under "platform" and raw Open Graph tags under "og".
	ExtraData map[string]any `json:"extraData,omitempty"`
}

// Ptr returns a pointer to v. Convenience for building partial records.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a deep copy of the metadata. ExtraData maps are copied
// recursively; other pointer fields point at immutable values so a
// shallow copy of them is safe.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	out := *m
	out.ExtraData = cloneExtra(m.ExtraData)
	return &out
}

func cloneExtra(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneExtra(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// GetString returns the value of a pointer field, or "" when absent.
func GetString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
