package ghtoken

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FromHub reads a token from hub's configuration file.
//
// The file is located by checking, in order: $HUB_CONFIG used verbatim
// (no fallback if it doesn't exist), then `hub` under $XDG_CONFIG_HOME
// (or ~/.config when unset), then `hub` under each colon-separated
// entry of $XDG_CONFIG_DIRS (default /etc/xdg); the first existing
// file wins.
//
// The document must be a YAML mapping whose "github.com" key holds a
// sequence whose first element carries a nonempty string "oauth_token".
// Every deviation — no file, unreadable file, parse failure, wrong
// shape, missing key, non-string or empty value — returns ErrNotFound.
func FromHub() (string, error) {
	path, ok := hubConfigPath()
	if !ok {
		return "", ErrNotFound
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrNotFound
	}
	return hubOAuthTokenFromConfig(data)
}

// hubConfigPath resolves the hub configuration file location. When
// HUB_CONFIG is set it is returned without an existence check; the
// read in FromHub decides whether it works out.
func hubConfigPath() (string, bool) {
	if path := os.Getenv("HUB_CONFIG"); path != "" {
		return path, true
	}

	var dirs []string
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		dirs = append(dirs, home)
	} else {
		dirs = append(dirs, filepath.Join(xdg.Home, ".config"))
	}
	if search := os.Getenv("XDG_CONFIG_DIRS"); search != "" {
		dirs = append(dirs, strings.Split(search, ":")...)
	} else {
		dirs = append(dirs, "/etc/xdg")
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, "hub")
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// hubOAuthTokenFromConfig extracts ["github.com"][0]["oauth_token"]
// from a hub config document. Decoding into generic maps keeps a
// present-but-non-string value (e.g. a bare number) a lookup miss
// rather than a parse error.
func hubOAuthTokenFromConfig(data []byte) (string, error) {
	var cfg map[string][]map[string]any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", ErrNotFound
	}

	accounts, ok := cfg["github.com"]
	if !ok || len(accounts) == 0 || accounts[0] == nil {
		return "", ErrNotFound
	}
	token, ok := accounts[0]["oauth_token"].(string)
	if !ok || token == "" {
		return "", ErrNotFound
	}
	return token, nil
}
