package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// AppDirName is the directory used below the user's config directory
const AppDirName = "gantt-planner"

// ConfigFileName is the name of the tuning file
const ConfigFileName = "config.toml"

// ConfigDir returns $XDG_CONFIG_HOME/gantt-planner, falling back to ~/.config
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppDirName), nil
}

// ConfigPath returns the location of the tuning file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// ExpandPath expands environment variables and a leading ~ in value
func ExpandPath(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return value, nil
	}
	expanded := os.ExpandEnv(value)
	if !strings.HasPrefix(expanded, "~") {
		return expanded, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if expanded == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(expanded, "~/") {
		return filepath.Join(homeDir, expanded[2:]), nil
	}
	// ~user is not supported
	return expanded, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if filePath == "" {
		return ErrEmptyPath
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// openCommand builds the command that opens path on goos
func openCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, path), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", path), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, path), nil
	case OSAndroid:
		return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+path, "-t", "text/yaml"), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
