package sanity

import (
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// defaultHost is the API host used when no override is set. Point the
// override at "apicdn.sanity.io" to read through the CDN edge instead.
const defaultHost = "api.sanity.io"

// Config identifies the project and dataset every request runs against.
//
// Build a Config through [NewConfig]; once built it is immutable for the
// lifetime of the [Client] that holds it.
type Config struct {
	// ProjectID is the Sanity project identifier. Required.
	ProjectID string

	// Dataset is the dataset name within the project, e.g. "production".
	// Required.
	Dataset string

	// APIVersion is the date-formatted API version, e.g. "2021-06-07".
	// Defaults to [DefaultAPIVersion].
	APIVersion string

	// AccessToken is the bearer token for authenticated requests. When
	// empty, requests are sent without an Authorization header and only
	// public datasets are readable.
	AccessToken string

	// Host is the API host requests are addressed to. Defaults to
	// api.sanity.io.
	Host string
}

// BaseURL returns the API root for this configuration, e.g.
// https://abc123.api.sanity.io/v2021-06-07.
func (c Config) BaseURL() string {
	return "https://" + c.ProjectID + "." + c.Host + "/v" + c.APIVersion
}

// ConfigBuilder assembles a [Config] through chained setters ending in
// [ConfigBuilder.Build].
type ConfigBuilder struct {
	cfg Config
}

// NewConfig returns a builder seeded with the required project id and
// dataset. The remaining fields are optional:
//
//	cfg, err := sanity.NewConfig("abc123", "production").
//	    APIVersion("2021-10-21").
//	    AccessToken(token).
//	    Build()
func NewConfig(projectID, dataset string) *ConfigBuilder {
	return &ConfigBuilder{cfg: Config{ProjectID: projectID, Dataset: dataset}}
}

// APIVersion sets the date-formatted API version.
func (b *ConfigBuilder) APIVersion(v string) *ConfigBuilder {
	b.cfg.APIVersion = v
	return b
}

// AccessToken sets the bearer token used for authenticated requests.
// Tokens are created in the project's management console.
func (b *ConfigBuilder) AccessToken(t string) *ConfigBuilder {
	b.cfg.AccessToken = t
	return b
}

// HostOverride replaces the default api.sanity.io host, e.g. with the
// apicdn.sanity.io edge for cached reads.
func (b *ConfigBuilder) HostOverride(h string) *ConfigBuilder {
	b.cfg.Host = h
	return b
}

// Build validates the assembled values and returns the finished Config.
//
// ProjectID and Dataset must be non-empty; a violation is reported as an
// [ErrInvalidConfig] error. Unset optional fields receive their defaults.
func (b *ConfigBuilder) Build() (Config, error) {
	cfg := b.cfg
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.ProjectID, validation.Required),
		validation.Field(&cfg.Dataset, validation.Required),
	); err != nil {
		return Config{}, newError(CodeInvalidConfig, err.Error(), 0, nil)
	}
	return cfg, nil
}

// configFile is the YAML shape accepted by [ParseConfig].
type configFile struct {
	ProjectID  string `yaml:"projectId"`
	Dataset    string `yaml:"dataset"`
	APIVersion string `yaml:"apiVersion"`
	Token      string `yaml:"token"`
	Host       string `yaml:"host"`
}

// ParseConfig builds a Config from YAML data:
//
//	projectId: abc123
//	dataset: production
//	apiVersion: "2021-10-21"
//	token: sk...
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, newError(CodeInvalidConfig, "malformed config file", 0, err)
	}
	b := NewConfig(f.ProjectID, f.Dataset)
	if f.APIVersion != "" {
		b.APIVersion(f.APIVersion)
	}
	if f.Token != "" {
		b.AccessToken(f.Token)
	}
	if f.Host != "" {
		b.HostOverride(f.Host)
	}
	return b.Build()
}

// LoadConfig reads a YAML config file from disk and builds a Config from it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, newError(CodeIO, "reading config file", 0, err)
	}
	return ParseConfig(data)
}
