package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// audioStem is the fixed filename stem yt-dlp writes the extracted track to.
// The extension depends on the source container, so lookups glob for it.
const audioStem = "audio"

// CommandRunner executes external commands and returns stdout bytes.
type CommandRunner func(ctx context.Context, binary string, args ...string) ([]byte, error)

// Fetcher downloads a video's audio track to a temporary directory using the
// yt-dlp CLI tool.
type Fetcher struct {
	Binary  string
	BaseDir string
	Run     CommandRunner
	Timeout time.Duration
}

// Download is the result of a successful fetch. Callers own the temporary
// directory and must invoke Cleanup on every exit path.
type Download struct {
	AudioPath string
	dir       string
}

// Cleanup removes the temporary directory holding the audio file.
func (d Download) Cleanup() {
	if d.dir != "" {
		_ = os.RemoveAll(d.dir)
	}
}

// NewFetcher constructs a Fetcher that shells out to yt-dlp.
func NewFetcher(binary string, timeout time.Duration) *Fetcher {
	if strings.TrimSpace(binary) == "" {
		binary = "yt-dlp"
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Fetcher{
		Binary:  binary,
		BaseDir: os.TempDir(),
		Run:     defaultCommandRunner,
		Timeout: timeout,
	}
}

// Fetch downloads the best available audio for the URL into a fresh
// request-scoped directory and returns the resulting file path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Download, error) {
	if f.Run == nil {
		f.Run = defaultCommandRunner
	}

	dir := filepath.Join(f.BaseDir, "instatrip-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Download{}, fmt.Errorf("create download dir: %w", err)
	}

	execCtx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	args := []string{
		"-x",
		"--audio-format", "mp3",
		"--no-playlist",
		"--no-warnings",
		"-o", filepath.Join(dir, audioStem+".%(ext)s"),
		url,
	}

	if _, err := f.Run(execCtx, f.Binary, args...); err != nil {
		_ = os.RemoveAll(dir)
		return Download{}, fmt.Errorf("%w: yt-dlp: %v", ErrDownloadFailed, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, audioStem+".*"))
	if err != nil || len(matches) == 0 {
		_ = os.RemoveAll(dir)
		return Download{}, fmt.Errorf("%w: no audio file produced", ErrDownloadFailed)
	}

	return Download{AudioPath: matches[0], dir: dir}, nil
}

func defaultCommandRunner(ctx context.Context, binary string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.Output()
}
