package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	dataFileMode    = 0o600
	dataDirMode     = 0o700
	dataDir         = ".persona"
	tempFilePattern = ".persona-*.toml.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// resolvePath reads key from cfg, falling back to ~/.persona/<fileName>.
func resolvePath(cfg *viper.Viper, key string, fileName string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(key)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, dataDir, fileName)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath hands every repository on the same file the same lock.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// readTOMLFile decodes path into file. A missing file leaves file at its
// zero value.
func readTOMLFile(path string, label string, file versioned) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.applyDefaults()
			return nil
		}
		return fmt.Errorf("read %s file: %w", label, err)
	}

	if err := toml.Unmarshal(data, file); err != nil {
		return fmt.Errorf("decode %s file: %w", label, err)
	}
	if err := file.validateVersion(); err != nil {
		return err
	}
	file.applyDefaults()

	return nil
}

func writeTOMLFile(path string, label string, file versioned) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), dataDirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", label, err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s file: %w", label, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", label, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s file: %w", label, err)
	}

	if err := tempFile.Chmod(dataFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s file: %w", label, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", label, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s file: %w", label, err)
	}

	cleanup = false

	if err := os.Chmod(path, dataFileMode); err != nil {
		return fmt.Errorf("chmod %s file: %w", label, err)
	}

	return nil
}
