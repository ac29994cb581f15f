package domain

import "net/url"

// PublicPrefix is the URL path under which the Storage Area is exposed.
const PublicPrefix = "/uploads"

type ArtifactKind string

const (
	ArtifactKindVideo ArtifactKind = "video"
	ArtifactKindImage ArtifactKind = "image"
)

// MediaArtifact is a file produced by the transcoder. It is never mutated.
type MediaArtifact struct {
	Name string       `json:"name"`
	Path string       `json:"-"`
	URL  string       `json:"url"`
	Kind ArtifactKind `json:"kind"`
}

func NewArtifact(name, path string, kind ArtifactKind) MediaArtifact {
	return MediaArtifact{
		Name: name,
		Path: path,
		URL:  PublicURL(name),
		Kind: kind,
	}
}

// PublicURL returns the relative URL of a Storage Area file.
func PublicURL(name string) string {
	return PublicPrefix + "/" + url.PathEscape(name)
}

// JobResult is what a succeeded job reports back to the caller.
type JobResult struct {
	Job       *ProcessingJob
	Video     MediaArtifact
	Thumbnail MediaArtifact
}
