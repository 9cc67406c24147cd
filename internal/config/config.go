// Package config provides configuration management for go-things-to-check.
package config

var AppVersion = "-unset-" // will be set at build time

// MainConfig holds the main configuration for go-things-to-check
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		AppVersion: AppVersion,
		Web: &WebConfig{
			ListenPort: 11980,
			SSL:        false,
		},
	}
}
