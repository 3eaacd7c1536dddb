package linkdrop

// Merge combines two partial metadata records. For every field, overlay's
// value wins over base's only if overlay's value is present (non-nil);
// an absent overlay field never clears a populated base field. ExtraData
// is merged recursively per key rather than replaced wholesale.
//
// Neither input is mutated. Merge(m, nil) and Merge(nil, m) both return
// a copy equivalent to m.
func Merge(base, overlay *Metadata) *Metadata {
	if base == nil {
		return overlay.Clone()
	}
	out := base.Clone()
	if overlay == nil {
		return out
	}

	if overlay.Title != nil {
		out.Title = overlay.Title
	}
	if overlay.Content != nil {
		out.Content = overlay.Content
	}
	if overlay.Description != nil {
		out.Description = overlay.Description
	}
	if overlay.ThumbnailURL != nil {
		out.ThumbnailURL = overlay.ThumbnailURL
	}
	if overlay.ProfileImage != nil {
		out.ProfileImage = overlay.ProfileImage
	}
	if overlay.Author != nil {
		out.Author = overlay.Author
	}
	if overlay.Username != nil {
		out.Username = overlay.Username
	}
	if overlay.DisplayName != nil {
		out.DisplayName = overlay.DisplayName
	}
	if overlay.Domain != "" {
		out.Domain = overlay.Domain
	}
	if overlay.PublishedDate != nil {
		out.PublishedDate = overlay.PublishedDate
	}
	if overlay.Duration != nil {
		out.Duration = overlay.Duration
	}
	if overlay.Likes != nil {
		out.Likes = overlay.Likes
	}
	if overlay.Replies != nil {
		out.Replies = overlay.Replies
	}
	if overlay.Retweets != nil {
		out.Retweets = overlay.Retweets
	}
	if overlay.Views != nil {
		out.Views = overlay.Views
	}
	if overlay.Stars != nil {
		out.Stars = overlay.Stars
	}
	if overlay.Forks != nil {
		out.Forks = overlay.Forks
	}
	if overlay.Price != nil {
		out.Price = overlay.Price
	}
	if overlay.Rating != nil {
		out.Rating = overlay.Rating
	}
	if overlay.Reviews != nil {
		out.Reviews = overlay.Reviews
	}
	if overlay.FileSize != nil {
		out.FileSize = overlay.FileSize
	}
	if overlay.PageCount != nil {
		out.PageCount = overlay.PageCount
	}
	if overlay.VideoURL != nil {
		out.VideoURL = overlay.VideoURL
	}
	if overlay.VideoType != nil {
		out.VideoType = overlay.VideoType
	}
	if overlay.VideoWidth != nil {
		out.VideoWidth = overlay.VideoWidth
	}
	if overlay.VideoHeight != nil {
		out.VideoHeight = overlay.VideoHeight
	}

	out.ExtraData = mergeExtra(out.ExtraData, overlay.ExtraData)

	return out
}

// mergeExtra merges overlay keys into base per key. When both sides hold
// a nested map the merge recurses; otherwise the overlay value wins.
func mergeExtra(base, overlay map[string]any) map[string]any {
	if len(overlay) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]any, len(overlay))
	}
	for k, v := range overlay {
		bv, ok := base[k]
		if ok {
			bm, bOK := bv.(map[string]any)
			om, oOK := v.(map[string]any)
			if bOK && oOK {
				base[k] = mergeExtra(cloneExtra(bm), om)
				continue
			}
		}
		if nested, isMap := v.(map[string]any); isMap {
			base[k] = cloneExtra(nested)
			continue
		}
		base[k] = v
	}
	return base
}
