// Package enhance implements the per-content-type post-processing stage
// of the analysis pipeline. Each content type gets a pure function that
// rewrites or derives fields from the merged metadata record and may
// refine the content type itself; unknown types fall through to a
// default cleanup.
package enhance

import (
	"strings"

	"github.com/fwojciec/linkdrop"
)

// Input is everything an enhancer may consult. Metadata is never mutated
// in place; enhancers work on a clone.
type Input struct {
	// URL is the normalized URL being analyzed.
	URL string

	// Type is the provisional content type entering enhancement.
	Type linkdrop.ContentType

	// Metadata is the merged record from all adapters.
	Metadata *linkdrop.Metadata

	// Authoritative reports whether the platform adapter's result was
	// authoritative; generic-title cleanup is suppressed in that case.
	Authoritative bool

	// ReaderContent is the markdown body the reader adapter produced,
	// or "" when it did not run or found nothing.
	ReaderContent string
}

// Func rewrites metadata for one content type. It returns the (possibly
// refined) content type and the new metadata record.
type Func func(in Input) (linkdrop.ContentType, *linkdrop.Metadata)

// Registry maps content types to enhancer functions with a default
// entry for unregistered types.
type Registry struct {
	funcs    map[linkdrop.ContentType]Func
	fallback Func
}

// NewRegistry creates a Registry with the standard enhancers installed.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:    map[linkdrop.ContentType]Func{},
		fallback: Default,
	}
	r.Register(linkdrop.TypeYouTube, YouTube)
	r.Register(linkdrop.TypeX, Social)
	r.Register(linkdrop.TypeMovie, MovieTV)
	r.Register(linkdrop.TypeTVShow, MovieTV)
	r.Register(linkdrop.TypeImage, Image)
	return r
}

// Register adds or replaces the enhancer for a content type.
func (r *Registry) Register(ct linkdrop.ContentType, fn Func) {
	r.funcs[ct] = fn
}

// Apply runs the enhancer registered for the input's type, or the
// default for unregistered types. The default cleanup is skipped when
// the metadata came from an authoritative source, whose fields stand
// as-is.
func (r *Registry) Apply(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	if in.Metadata == nil {
		in.Metadata = &linkdrop.Metadata{Domain: linkdrop.ExtractDomain(in.URL)}
	}
	if fn, ok := r.funcs[in.Type]; ok {
		return fn(in)
	}
	if in.Authoritative {
		return in.Type, in.Metadata.Clone()
	}
	return r.fallback(in)
}

// RefineFromOG adopts a more specific content type from the raw Open
// Graph type tag. It only fires when the provisional type was the
// generic fallback: a positive pattern-rule match is never overridden by
// page-supplied data.
func RefineFromOG(ct linkdrop.ContentType, md *linkdrop.Metadata) linkdrop.ContentType {
	if ct != linkdrop.TypeBookmark || md == nil {
		return ct
	}
	og, ok := md.ExtraData["og"].(map[string]any)
	if !ok {
		return ct
	}
	ogType, _ := og["type"].(string)
	ogType = strings.ToLower(strings.TrimSpace(ogType))
	switch {
	case ogType == "product" || strings.HasPrefix(ogType, "product."):
		return linkdrop.TypeProduct
	case ogType == "article" || strings.HasPrefix(ogType, "article."):
		return linkdrop.TypeArticle
	case strings.HasPrefix(ogType, "video"):
		return linkdrop.TypeVideo
	case ogType == "book" || strings.HasPrefix(ogType, "book."):
		return linkdrop.TypeBook
	}
	return ct
}
