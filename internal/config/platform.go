package config

import (
	"os"
	"runtime"
)

// PlatformProvider is the slice of the operating system the config and
// path helpers touch. Tests swap it for a fake.
type PlatformProvider interface {
	// OS returns runtime.GOOS or a stand-in
	OS() string
	Env(key string) string
	HomeDir() (string, error)
	// MkdirAll creates dir and its parents
	MkdirAll(dir string) error
	// IsFile reports whether path exists and is not a directory
	IsFile(path string) bool
}

type osPlatform struct{}

func (osPlatform) OS() string { return runtime.GOOS }

func (osPlatform) Env(key string) string { return os.Getenv(key) }

func (osPlatform) HomeDir() (string, error) { return os.UserHomeDir() }

func (osPlatform) MkdirAll(dir string) error { return os.MkdirAll(dir, 0755) }

func (osPlatform) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultPlatform is used by the helpers without a platform argument
var DefaultPlatform PlatformProvider = osPlatform{}
