package enhance

import "github.com/fwojciec/linkdrop"

// YouTube derives the canonical high-resolution thumbnail from the video
// ID in the URL. The ID-based scheme is guaranteed-available for every
// video, so it replaces whatever thumbnail earlier sources supplied —
// the oEmbed thumbnail in particular is a lower-quality variant.
func YouTube(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	md := in.Metadata.Clone()

	videoID := linkdrop.YouTubeVideoID(in.URL)
	if videoID == "" {
		return in.Type, md
	}

	md.ThumbnailURL = linkdrop.Ptr(linkdrop.YouTubeThumbnailURL(videoID))

	platform, _ := md.ExtraData["platform"].(map[string]any)
	if platform == nil {
		platform = map[string]any{}
	}
	platform["videoId"] = videoID
	if md.ExtraData == nil {
		md.ExtraData = map[string]any{}
	}
	md.ExtraData["platform"] = platform

	return in.Type, md
}
