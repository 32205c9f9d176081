package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds seed files relative to the places SentServe is usually run from
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
	}

	pr := &PathResolver{
		executableDir: execDir,
		workingDir:    cwd,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s", execDir, cwd, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "sentserve")
		}
		return filepath.Join(homeDir, ".config", "sentserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sentserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "sentserve")
	default:
		return filepath.Join(homeDir, ".config", "sentserve")
	}
}

// Candidates lists where a relative path is looked up, in order of preference:
// 1. as given (absolute paths stop here)
// 2. relative to the current working directory
// 3. relative to the executable directory
// 4. inside the config directory
func (pr *PathResolver) Candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	var candidates []string
	if pr.workingDir != "" {
		candidates = append(candidates, filepath.Join(pr.workingDir, path))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	)
}

// Resolve returns the first candidate that exists as a regular file,
// or os.ErrNotExist.
func (pr *PathResolver) Resolve(path string) (string, error) {
	for _, candidate := range pr.Candidates(path) {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			log.Debugf("Resolved %s to %s", path, candidate)
			return candidate, nil
		}
		log.Debugf("Candidate not found: %s", candidate)
	}
	return "", os.ErrNotExist
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
