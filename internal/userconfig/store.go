package userconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the key-binding file inside the config directory.
const FileName = "key_binds.yaml"

// appDir is the directory created under the OS config directory.
const appDir = "sotora"

// ConfigDir returns override when set, otherwise <user config dir>/sotora.
func ConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Path returns the key-binding file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the key bindings in dir. A missing file yields the defaults,
// which are written back so the user has a file to edit.
func Load(dir string) (KeyBinds, error) {
	path := Path(dir)
	kb, err := Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		kb = DefaultKeyBinds()
		if err := Save(dir, kb); err != nil {
			return kb, err
		}
		return kb, nil
	}
	if err != nil {
		return KeyBinds{}, err
	}
	return kb, nil
}

// Read parses the file at path over the defaults. Unlike Load it never
// creates the file.
func Read(path string) (KeyBinds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyBinds{}, err
	}
	kb, err := Parse(data)
	if err != nil {
		return KeyBinds{}, fmt.Errorf("parse key binds %s: %w", path, err)
	}
	return kb, nil
}

// Parse decodes YAML bindings. Fields absent from data keep their default;
// unknown fields are an error.
func Parse(data []byte) (KeyBinds, error) {
	kb := DefaultKeyBinds()
	if len(bytes.TrimSpace(data)) == 0 {
		return kb, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&kb); err != nil && !errors.Is(err, io.EOF) {
		return KeyBinds{}, err
	}
	if err := kb.Validate(); err != nil {
		return KeyBinds{}, err
	}
	return kb, nil
}

// Marshal encodes bindings in file order.
func Marshal(kb KeyBinds) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(kb); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes kb to dir, replacing any previous file.
func Save(dir string, kb KeyBinds) error {
	data, err := Marshal(kb)
	if err != nil {
		return fmt.Errorf("encode key binds: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}
	path := Path(dir)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write key binds %s: %w", path, err)
	}
	return nil
}
