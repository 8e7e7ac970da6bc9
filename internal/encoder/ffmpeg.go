package encoder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvFFmpeg names the ffmpeg binary to use when no explicit path is given.
const EnvFFmpeg = "PROXVID_FFMPEG"

// EnvImageIOFFmpeg is honored as a fallback for environments already set up
// for imageio-based tooling.
const EnvImageIOFFmpeg = "IMAGEIO_FFMPEG_EXE"

var ErrNotFound = errors.New("encoder: ffmpeg executable not found")

// Status reports where ffmpeg was found, or why it was not.
type Status struct {
	Name      string
	Command   string
	Source    string
	Available bool
	Detail    string
}

// Check resolves ffmpeg without failing, for diagnostics output.
//
// Lookup order: explicit, $PROXVID_FFMPEG, $IMAGEIO_FFMPEG_EXE, "ffmpeg" on PATH.
func Check(explicit string) Status {
	result := Status{Name: "FFmpeg"}

	candidates := []struct {
		source, value string
	}{
		{"flag", explicit},
		{EnvFFmpeg, os.Getenv(EnvFFmpeg)},
		{EnvImageIOFFmpeg, os.Getenv(EnvImageIOFFmpeg)},
	}
	for _, c := range candidates {
		value := strings.TrimSpace(c.value)
		if value == "" {
			continue
		}
		result.Command = value
		result.Source = c.source
		resolved, err := lookup(value)
		if err != nil {
			result.Detail = err.Error()
			return result
		}
		result.Command = resolved
		result.Available = true
		return result
	}

	name := executableName("ffmpeg")
	result.Command = name
	result.Source = "PATH"
	if path, err := exec.LookPath(name); err == nil {
		result.Command = path
		result.Available = true
		return result
	}
	result.Detail = fmt.Sprintf("binary %q not found", name)
	return result
}

// Resolve returns the ffmpeg path Check would report, or an error
// wrapping ErrNotFound.
func Resolve(explicit string) (string, error) {
	status := Check(explicit)
	if !status.Available {
		return "", fmt.Errorf("%w (%s: %s)", ErrNotFound, status.Source, status.Detail)
	}
	return status.Command, nil
}

func lookup(value string) (string, error) {
	if !strings.ContainsRune(value, filepath.Separator) {
		path, err := exec.LookPath(value)
		if err != nil {
			return "", fmt.Errorf("binary %q not found", value)
		}
		return path, nil
	}
	info, err := os.Stat(value)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", value, err)
	}
	if !isExecutable(info) {
		return "", fmt.Errorf("%s is not executable", value)
	}
	return value, nil
}

func executableName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
