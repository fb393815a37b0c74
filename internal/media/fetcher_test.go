package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFetcherFetchDownloadsAudio(t *testing.T) {
	f := NewFetcher("yt-dlp", time.Second)
	f.BaseDir = t.TempDir()

	f.Run = func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		if binary != "yt-dlp" {
			t.Fatalf("unexpected binary: %q", binary)
		}
		if args[0] != "-x" || args[1] != "--audio-format" || args[2] != "mp3" {
			t.Fatalf("unexpected audio extraction args: %v", args)
		}

		// yt-dlp writes into the -o template directory.
		var template string
		for i, arg := range args {
			if arg == "-o" && i+1 < len(args) {
				template = args[i+1]
			}
		}
		if template == "" {
			t.Fatal("missing -o output template")
		}
		path := strings.Replace(template, "%(ext)s", "mp3", 1)
		if err := os.WriteFile(path, []byte("mp3 bytes"), 0o600); err != nil {
			t.Fatalf("write fake audio: %v", err)
		}
		return nil, nil
	}

	dl, err := f.Fetch(context.Background(), "https://www.tiktok.com/@user/video/123")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	defer dl.Cleanup()

	if filepath.Base(dl.AudioPath) != "audio.mp3" {
		t.Fatalf("unexpected audio path: %q", dl.AudioPath)
	}
	if _, err := os.Stat(dl.AudioPath); err != nil {
		t.Fatalf("audio file missing: %v", err)
	}
}

func TestFetcherFetchNoFileProduced(t *testing.T) {
	f := NewFetcher("yt-dlp", time.Second)
	f.BaseDir = t.TempDir()
	f.Run = func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		return nil, nil // command "succeeds" but writes nothing
	}

	if _, err := f.Fetch(context.Background(), "https://www.tiktok.com/@user/video/123"); !errors.Is(err, ErrDownloadFailed) {
		t.Fatalf("expected ErrDownloadFailed, got %v", err)
	}

	entries, err := os.ReadDir(f.BaseDir)
	if err != nil {
		t.Fatalf("read base dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp dir cleanup after failure, found %d entries", len(entries))
	}
}

func TestFetcherFetchCommandError(t *testing.T) {
	f := NewFetcher("yt-dlp", time.Second)
	f.BaseDir = t.TempDir()
	f.Run = func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		return nil, errors.New("video is private")
	}

	if _, err := f.Fetch(context.Background(), "https://www.instagram.com/reel/abc"); !errors.Is(err, ErrDownloadFailed) {
		t.Fatalf("expected ErrDownloadFailed, got %v", err)
	}
}

func TestDownloadCleanupRemovesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "instatrip-test")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "audio.mp3")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	dl := Download{AudioPath: path, dir: dir}
	dl.Cleanup()

	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected directory removed, stat err = %v", err)
	}
}
