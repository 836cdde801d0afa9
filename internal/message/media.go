package message

import (
	"strings"
)

// MediaKind classifies an attachment.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaFile  MediaKind = "file"
	MediaGif   MediaKind = "gif"
)

// MediaStatus tracks an attachment's transfer state.
type MediaStatus string

const (
	MediaPending     MediaStatus = "pending"
	MediaUploading   MediaStatus = "uploading"
	MediaUploaded    MediaStatus = "uploaded"
	MediaDownloading MediaStatus = "downloading"
	MediaDownloaded  MediaStatus = "downloaded"
	MediaFailed      MediaStatus = "failed"
)

// Attachment is a single media item attached to a message. Progress is only
// meaningful while Status is MediaUploading; it is ignored otherwise.
type Attachment struct {
	ID           string
	Kind         MediaKind
	URL          string
	ThumbnailURL string
	Filename     string
	MIMEType     string
	Size         int64
	Duration     int // seconds, audio and video only
	Width        int
	Height       int
	Status       MediaStatus
	Progress     int // 0-100
}

// IsGif reports whether the attachment carries GIF content, matching on the
// declared MIME type or a case-insensitive .gif filename extension.
func (a Attachment) IsGif() bool {
	if a.MIMEType == "image/gif" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(a.Filename), ".gif")
}

// MediaOfKind returns all attachments of the given kind, in order.
func (m Message) MediaOfKind(kind MediaKind) []Attachment {
	var out []Attachment
	for _, a := range m.Media {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// FirstMediaOfKind returns the first attachment of the given kind.
func (m Message) FirstMediaOfKind(kind MediaKind) (Attachment, bool) {
	for _, a := range m.Media {
		if a.Kind == kind {
			return a, true
		}
	}
	return Attachment{}, false
}

// LooksLikeGif reports whether a message of unrecognized kind should be
// treated as a GIF: either the custom payload carries a "gif" entry, or any
// attachment sniffs as GIF content.
func (m Message) LooksLikeGif() bool {
	if _, ok := m.Custom["gif"]; ok {
		return true
	}
	for _, a := range m.Media {
		if a.IsGif() {
			return true
		}
	}
	return false
}
