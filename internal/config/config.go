package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/3-lines-studio/gjallar/internal/errors"
)

var entryNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Config is the immutable project configuration, read once per command
type Config struct {
	Root    string
	Entries []Entry
	Build   Build
	Server  Server
	Watch   Watch
	Logging Logging
	Sentry  Sentry
}

// Entry maps a logical bundle name to its source file, relative to Root
type Entry struct {
	Name   string
	Source string
}

// Build holds production build options
type Build struct {
	OutDir    string `mapstructure:"outDir" yaml:"outDir"`
	Manifest  bool   `mapstructure:"manifest" yaml:"manifest"`
	Base      string `mapstructure:"base" yaml:"base"`
	PublicDir string `mapstructure:"publicDir" yaml:"publicDir"`
	Minify    bool   `mapstructure:"minify" yaml:"minify"`
	Sourcemap bool   `mapstructure:"sourcemap" yaml:"sourcemap"`
	Target    string `mapstructure:"target" yaml:"target"`
}

// Server holds dev and preview server options
type Server struct {
	Host        string      `mapstructure:"host" yaml:"host"`
	Port        int         `mapstructure:"port" yaml:"port"`
	PreviewPort int         `mapstructure:"previewPort" yaml:"previewPort"`
	Proxy       []ProxyRule `mapstructure:"-" yaml:"-"`
}

// ProxyRule forwards requests under Prefix to Target during development
type ProxyRule struct {
	Prefix       string
	Target       string
	ChangeOrigin bool
}

// Watch holds dev rebuild trigger options
type Watch struct {
	Ignore   []string      `mapstructure:"ignore" yaml:"ignore"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Logging holds logger options
type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Sentry holds optional error reporting options
type Sentry struct {
	DSN         string `mapstructure:"dsn" yaml:"dsn"`
	Environment string `mapstructure:"environment" yaml:"environment"`
}

// fileConfig is the viper-decoded part of the config file
type fileConfig struct {
	Root    string  `mapstructure:"root"`
	Build   Build   `mapstructure:"build"`
	Server  Server  `mapstructure:"server"`
	Watch   Watch   `mapstructure:"watch"`
	Logging Logging `mapstructure:"logging"`
	Sentry  Sentry  `mapstructure:"sentry"`
}

// DefaultConfig returns the configuration used when the file omits a value
func DefaultConfig() Config {
	return Config{
		Root: ".",
		Build: Build{
			OutDir:    OutDir,
			Manifest:  true,
			Base:      Base,
			PublicDir: PublicDir,
			Minify:    true,
			Target:    Target,
		},
		Server: Server{
			Host:        Host,
			Port:        Port,
			PreviewPort: PreviewPort,
		},
		Watch: Watch{
			Ignore:   slices.Clone(DefaultWatchIgnore),
			Debounce: WatchDebounce,
		},
		Logging: Logging{
			Level:  LogLevel,
			Format: LogFormat,
		},
	}
}

// Load reads, resolves and validates the config file at path
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	dir := filepath.Dir(absPath)
	if err := loadDotEnv(dir); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg, err := Parse(data, dir)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes config file contents; relative paths resolve against dir
func Parse(data []byte, dir string) (Config, error) {
	defaults := DefaultConfig()

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigType("yaml")
	setDefaults(v, defaults)
	bindEnv(v)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	entries, proxy, err := parseMappings(data)
	if err != nil {
		return Config{}, err
	}

	root := fc.Root
	if root == "" {
		root = defaults.Root
	}

	if !filepath.IsAbs(root) {
		root = filepath.Join(dir, root)
	}

	root = filepath.Clean(root)

	cfg := Config{
		Root:    root,
		Entries: entries,
		Build:   fc.Build,
		Server:  fc.Server,
		Watch:   fc.Watch,
		Logging: fc.Logging,
		Sentry:  fc.Sentry,
	}
	cfg.Server.Proxy = proxy

	if cfg.Build.OutDir != "" && !filepath.IsAbs(cfg.Build.OutDir) {
		cfg.Build.OutDir = filepath.Join(root, cfg.Build.OutDir)
	}

	if cfg.Build.PublicDir != "" && !filepath.IsAbs(cfg.Build.PublicDir) {
		cfg.Build.PublicDir = filepath.Join(root, cfg.Build.PublicDir)
	}

	cfg.Build.Base = normalizeBase(cfg.Build.Base)

	return cfg, nil
}

// setDefaults registers defaults so file values only need to override
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("root", d.Root)
	v.SetDefault("build::outDir", d.Build.OutDir)
	v.SetDefault("build::manifest", d.Build.Manifest)
	v.SetDefault("build::base", d.Build.Base)
	v.SetDefault("build::publicDir", d.Build.PublicDir)
	v.SetDefault("build::minify", d.Build.Minify)
	v.SetDefault("build::sourcemap", d.Build.Sourcemap)
	v.SetDefault("build::target", d.Build.Target)
	v.SetDefault("server::host", d.Server.Host)
	v.SetDefault("server::port", d.Server.Port)
	v.SetDefault("server::previewPort", d.Server.PreviewPort)
	v.SetDefault("watch::ignore", d.Watch.Ignore)
	v.SetDefault("watch::debounce", d.Watch.Debounce)
	v.SetDefault("logging::level", d.Logging.Level)
	v.SetDefault("logging::format", d.Logging.Format)
}

// bindEnv wires the supported environment overrides
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server::port", EnvPort)
	_ = v.BindEnv("build::outDir", EnvOutDir)
	_ = v.BindEnv("logging::level", EnvLogLevel)
	_ = v.BindEnv("logging::format", EnvLogFormat)
	_ = v.BindEnv("sentry::dsn", EnvSentryDSN)
}

// loadDotEnv loads dir/.env without overriding variables already set
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, EnvFile)

	if _, err := os.Stat(path); err != nil {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrFailedToReadConfig, path, err)
	}

	return nil
}

// parseMappings reads entries and proxy rules from the raw YAML tree, keeping key case and order
func parseMappings(data []byte) ([]Entry, []ProxyRule, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, nil, nil
	}

	var (
		entries []Entry
		proxy   []ProxyRule
	)

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		switch key.Value {
		case "entries":
			parsed, err := parseEntries(value)
			if err != nil {
				return nil, nil, err
			}

			entries = parsed
		case "server":
			for j := 0; j+1 < len(value.Content); j += 2 {
				if value.Content[j].Value != "proxy" {
					continue
				}

				parsed, err := parseProxy(value.Content[j+1])
				if err != nil {
					return nil, nil, err
				}

				proxy = parsed
			}
		}
	}

	return entries, proxy, nil
}

// parseEntries decodes the entries mapping; duplicate names are kept for Validate to reject
func parseEntries(node *yaml.Node) ([]Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: entries must be a mapping of name to source path", errors.ErrFailedToParseConfig)
	}

	entries := make([]Entry, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		source := node.Content[i+1]

		if source.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: entry %q must map to a source path", errors.ErrFailedToParseConfig, name)
		}

		entries = append(entries, Entry{
			Name:   name,
			Source: filepath.ToSlash(filepath.Clean(source.Value)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// parseProxy decodes the server.proxy mapping of prefix to target options
func parseProxy(node *yaml.Node) ([]ProxyRule, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: server.proxy must be a mapping of prefix to target", errors.ErrFailedToParseConfig)
	}

	rules := make([]ProxyRule, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		prefix := node.Content[i].Value
		value := node.Content[i+1]

		rule := ProxyRule{Prefix: prefix}

		switch value.Kind {
		case yaml.ScalarNode:
			rule.Target = value.Value
		case yaml.MappingNode:
			var opts struct {
				Target       string `yaml:"target"`
				ChangeOrigin bool   `yaml:"changeOrigin"`
			}

			if err := value.Decode(&opts); err != nil {
				return nil, fmt.Errorf("%w: proxy %q: %w", errors.ErrFailedToParseConfig, prefix, err)
			}

			rule.Target = opts.Target
			rule.ChangeOrigin = opts.ChangeOrigin
		default:
			return nil, fmt.Errorf("%w: proxy %q must be a URL or a mapping", errors.ErrFailedToParseConfig, prefix)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// normalizeBase guarantees a leading and trailing slash
func normalizeBase(base string) string {
	if base == "" {
		return Base
	}

	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base
}

// SourcePath returns the absolute path of an entry's source file
func (c Config) SourcePath(e Entry) string {
	return filepath.Join(c.Root, filepath.FromSlash(e.Source))
}

// ManifestPath returns where the build writes its manifest
func (c Config) ManifestPath() string {
	return filepath.Join(c.Build.OutDir, ManifestFile)
}

// Addr returns the dev server listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// PreviewAddr returns the preview server listen address
func (c Config) PreviewAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.PreviewPort)
}

// Validate checks every invariant that must hold before a build or server starts
func (c Config) Validate() error {
	if err := c.validateEntries(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	if err := c.validateBuild(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	if err := c.validateServer(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return nil
}

// validateEntries enforces unique, well-formed names backed by existing files
func (c Config) validateEntries() error {
	if len(c.Entries) == 0 {
		return errors.ErrNoEntries
	}

	seen := make(map[string]string, len(c.Entries))

	for _, e := range c.Entries {
		if !entryNamePattern.MatchString(e.Name) {
			return fmt.Errorf("%w: %q (use lowercase letters, digits, '-' and '_')", errors.ErrInvalidEntryName, e.Name)
		}

		folded := strings.ToLower(e.Name)
		if prev, ok := seen[folded]; ok {
			return fmt.Errorf("%w: %q and %q", errors.ErrDuplicateEntryName, prev, e.Name)
		}

		seen[folded] = e.Name

		info, err := os.Stat(c.SourcePath(e))
		if err != nil {
			return fmt.Errorf("%w: %s -> %s", errors.ErrEntryNotFound, e.Name, e.Source)
		}

		if info.IsDir() {
			return fmt.Errorf("%w: %s -> %s", errors.ErrEntryIsDirectory, e.Name, e.Source)
		}
	}

	return nil
}

// validateBuild rejects output locations whose replacement would delete the project
func (c Config) validateBuild() error {
	if c.Build.OutDir == "" {
		return errors.ErrOutDirRequired
	}

	rel, err := filepath.Rel(filepath.Clean(c.Build.OutDir), c.Root)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnsafeOutDir, err)
	}

	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: %s", errors.ErrUnsafeOutDir, c.Build.OutDir)
	}

	if c.Build.Target != "" && !slices.Contains(Targets, c.Build.Target) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidTarget, c.Build.Target)
	}

	return nil
}

// validateServer checks ports and proxy rules
func (c Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port=%d", errors.ErrInvalidPort, c.Server.Port)
	}

	if c.Server.PreviewPort < 1 || c.Server.PreviewPort > 65535 {
		return fmt.Errorf("%w: server.previewPort=%d", errors.ErrInvalidPort, c.Server.PreviewPort)
	}

	for _, rule := range c.Server.Proxy {
		if !strings.HasPrefix(rule.Prefix, "/") {
			return fmt.Errorf("%w: %q", errors.ErrInvalidProxyPrefix, rule.Prefix)
		}

		u, err := url.Parse(rule.Target)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s -> %q", errors.ErrInvalidProxyTarget, rule.Prefix, rule.Target)
		}
	}

	return nil
}
