// Package media handles on-disk media artifacts: ffmpeg audio extraction and
// per-request temporary files.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExtractAudio uses ffmpeg to decode any audio or video container into a
// mono 16 kHz WAV file next to the source, returning the path of the
// extracted file.
func ExtractAudio(ctx context.Context, srcPath string) (string, error) {
	out := srcPath + ".wav"

	// ffmpeg -y -i input -ac 1 -ar 16000 -f wav output
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", srcPath,
		"-ac", "1", "-ar", "16000",
		"-f", "wav",
		out,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return out, nil
}

// ConvertToFLAC re-encodes a WAV file as FLAC for upload to the speech API.
func ConvertToFLAC(ctx context.Context, wavPath string) (string, error) {
	out := strings.TrimSuffix(wavPath, ".wav") + ".flac"

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", wavPath,
		"-f", "flac",
		out,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return out, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
