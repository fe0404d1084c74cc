package config

import (
	"path/filepath"
)

const appName = "slotlist"

// GlobalConfigPath returns ~/.slotlist/config.yaml
func GlobalConfigPath() string {
	return GlobalConfigPathWithPlatform(DefaultPlatform)
}

// GlobalConfigPathWithPlatform returns "" when the home directory is unknown
func GlobalConfigPathWithPlatform(platform PlatformProvider) string {
	home, err := platform.HomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "."+appName, "config.yaml")
}

// ProjectConfigPath returns the project-level config path under dir
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, "."+appName, "config.yaml")
}

// UserCacheDir returns the application cache directory
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform resolves the cache directory for platform's OS
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.OS() {
	case "windows":
		// %LOCALAPPDATA%\slotlist\
		localAppData := platform.Env("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.HomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/slotlist/
		home, _ := platform.HomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		// $XDG_CACHE_HOME/slotlist or ~/.cache/slotlist/
		if xdg := platform.Env("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, _ := platform.HomeDir()
		return filepath.Join(home, ".cache", appName)
	}
}

// HistoryDBPath returns the path to the SQLite activation database
func HistoryDBPath() string {
	return HistoryDBPathWithPlatform(DefaultPlatform)
}

// HistoryDBPathWithPlatform creates the cache directory and returns the
// database path inside it
func HistoryDBPathWithPlatform(platform PlatformProvider) string {
	return cacheFile(platform, "activations.db")
}

// LogPath returns the path of the application log file
func LogPath() string {
	return LogPathWithPlatform(DefaultPlatform)
}

// LogPathWithPlatform creates the cache directory and returns the log path
// inside it
func LogPathWithPlatform(platform PlatformProvider) string {
	return cacheFile(platform, appName+".log")
}

func cacheFile(platform PlatformProvider, name string) string {
	dir := UserCacheDirWithPlatform(platform)
	// opening the file reports the real error if this failed
	_ = platform.MkdirAll(dir)
	return filepath.Join(dir, name)
}
