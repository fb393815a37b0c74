package videolink

import (
	"regexp"
	"strings"
)

// Platform identifies the social network a video link belongs to.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// Reference holds whatever could be derived from the raw link text.
// Platform being empty means the URL was not recognized at all; empty
// VideoID/Username with a set Platform is still a usable reference.
type Reference struct {
	Platform Platform `json:"platform,omitempty"`
	VideoID  string   `json:"video_id,omitempty"`
	Username string   `json:"username,omitempty"`
}

var (
	tiktokPattern    = regexp.MustCompile(`@([^/]+)/video/(\d+)`)
	instagramPattern = regexp.MustCompile(`reel/([^/?]+)`)
)

// Classify inspects a raw URL string and extracts platform, video ID and
// username where the known URL shapes allow it.
func Classify(url string) Reference {
	var ref Reference

	switch {
	case strings.Contains(url, "tiktok.com"):
		ref.Platform = PlatformTikTok
		if m := tiktokPattern.FindStringSubmatch(url); m != nil {
			ref.Username = m[1]
			ref.VideoID = m[2]
		}
	case strings.Contains(url, "instagram.com"):
		ref.Platform = PlatformInstagram
		if m := instagramPattern.FindStringSubmatch(url); m != nil {
			ref.VideoID = m[1]
		}
	}

	return ref
}

// Recognized reports whether the URL belongs to a supported platform.
func (r Reference) Recognized() bool {
	return r.Platform != ""
}
