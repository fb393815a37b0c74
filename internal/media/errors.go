package media

import "errors"

var (
	// ErrDownloadFailed indicates yt-dlp produced no audio file for the URL
	// (private video, network failure, or an extractor incompatibility).
	ErrDownloadFailed = errors.New("audio download failed")
)
