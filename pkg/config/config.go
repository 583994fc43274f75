package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/format"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" validate:"required" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" validate:"min=1s" jsonschema:"description=HTTP server timeout (default 30s)"`
		BaseURL string        `yaml:"base_url" json:"base_url" validate:"omitempty,url" jsonschema:"default=http://localhost:8080,description=Public URL used in RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" validate:"required" jsonschema:"default=file:qotd.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" validate:"min=1" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" validate:"min=0" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" validate:"min=0" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Quotes QuotesConfig `yaml:"quotes" json:"quotes" jsonschema:"description=Remote quote API"`

	Format FormatConfig `yaml:"format" json:"format" jsonschema:"description=Rendering of inserted quotes"`

	Placeholders struct {
		Random   string `yaml:"random" json:"random" validate:"required" jsonschema:"default={{qotd}},description=Token replaced with a random quote"`
		Filtered string `yaml:"filtered" json:"filtered" validate:"required" jsonschema:"default={{fqotd}},description=Token replaced with a quote matching the filter"`
	} `yaml:"placeholders" json:"placeholders" jsonschema:"description=Placeholder tokens"`

	Schedule struct {
		Interval   time.Duration `yaml:"interval" json:"interval" validate:"min=5s,max=60s" jsonschema:"description=Placeholder check interval (default 5s)"`
		Pacing     time.Duration `yaml:"pacing" json:"pacing" validate:"min=0" jsonschema:"description=Delay between quote fetches (default 500ms)"`
		MaxWorkers int           `yaml:"max_workers" json:"max_workers" validate:"min=1,max=64" jsonschema:"default=4,description=Maximum documents resolved concurrently"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Filters []string `yaml:"filters" json:"filters" jsonschema:"description=Initial category filter"`

	Notices struct {
		Capacity int `yaml:"capacity" json:"capacity" validate:"min=1" jsonschema:"default=100,description=Number of user notices kept"`
	} `yaml:"notices" json:"notices" jsonschema:"description=User notices"`

	History struct {
		RSSLimit int `yaml:"rss_limit" json:"rss_limit" validate:"min=1,max=1000" jsonschema:"default=50,description=Number of inserted quotes in the RSS feed"`
	} `yaml:"history" json:"history" jsonschema:"description=Insertion history"`
}

// QuotesConfig holds quote API settings
type QuotesConfig struct {
	APIURL            string        `yaml:"api_url" json:"api_url" validate:"required,url" jsonschema:"default=https://api.quotable.io,description=Base URL of the quote API"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" validate:"min=100ms" jsonschema:"description=HTTP request timeout (default 10s)"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=qotd/1.0,description=User agent for HTTP requests"`
	RetryAttempts     int           `yaml:"retry_attempts" json:"retry_attempts" validate:"min=1,max=10" jsonschema:"default=2,description=Attempts per fetch on transient failures"`
	RetryDelay        time.Duration `yaml:"retry_delay" json:"retry_delay" validate:"min=0" jsonschema:"description=Delay between attempts (default 250ms)"`
	MinSelectionChars int           `yaml:"min_selection_chars" json:"min_selection_chars" validate:"min=1" jsonschema:"default=3,description=Shortest selection used as a tag"`
	MaxSelectionChars int           `yaml:"max_selection_chars" json:"max_selection_chars" validate:"gtefield=MinSelectionChars" jsonschema:"default=25,description=Longest selection used as a tag"`
}

// FormatConfig holds quote rendering settings
type FormatConfig struct {
	QuoteTemplate string `yaml:"quote_template" json:"quote_template" jsonschema:"description=Quote template with {content} and {author} fields"`
	TagTemplate   string `yaml:"tag_template" json:"tag_template" jsonschema:"description=Tag block template with {tags} field"`
	ShowTags      bool   `yaml:"show_tags" json:"show_tags" jsonschema:"default=false,description=Append tag block to quotes"`
	ShowTagHash   *bool  `yaml:"show_tag_hash" json:"show_tag_hash,omitempty" jsonschema:"default=true,description=Prefix tags with #"`
	TagSeparator  string `yaml:"tag_separator" json:"tag_separator" jsonschema:"description=Separator between tags"`
}

var validate = newValidator()

// Load reads configuration from a YAML file. Empty path gives the default configuration.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	def := domain.DefaultFormat()

	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		if strings.HasPrefix(c.Server.Listen, ":") {
			c.Server.BaseURL = "http://localhost" + c.Server.Listen
		} else {
			c.Server.BaseURL = "http://" + c.Server.Listen
		}
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:qotd.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// quotes
	if c.Quotes.APIURL == "" {
		c.Quotes.APIURL = "https://api.quotable.io"
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = 10 * time.Second
	}
	if c.Quotes.UserAgent == "" {
		c.Quotes.UserAgent = "qotd/1.0"
	}
	if c.Quotes.RetryAttempts == 0 {
		c.Quotes.RetryAttempts = 2
	}
	if c.Quotes.RetryDelay == 0 {
		c.Quotes.RetryDelay = 250 * time.Millisecond
	}
	if c.Quotes.MinSelectionChars == 0 {
		c.Quotes.MinSelectionChars = 3
	}
	if c.Quotes.MaxSelectionChars == 0 {
		c.Quotes.MaxSelectionChars = 25
	}

	// format
	if c.Format.QuoteTemplate == "" {
		c.Format.QuoteTemplate = def.QuoteTemplate
	}
	if c.Format.TagTemplate == "" {
		c.Format.TagTemplate = def.TagTemplate
	}
	if c.Format.TagSeparator == "" {
		c.Format.TagSeparator = def.TagSeparator
	}

	// placeholders
	if c.Placeholders.Random == "" {
		c.Placeholders.Random = domain.DefaultPlaceholders().Random
	}
	if c.Placeholders.Filtered == "" {
		c.Placeholders.Filtered = domain.DefaultPlaceholders().Filtered
	}

	// schedule
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 5 * time.Second
	}
	if c.Schedule.Pacing == 0 {
		c.Schedule.Pacing = 500 * time.Millisecond
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 4
	}

	if c.Notices.Capacity == 0 {
		c.Notices.Capacity = 100
	}
	if c.History.RSSLimit == 0 {
		c.History.RSSLimit = 50
	}
}

// Validate checks struct constraints, templates and placeholder tokens
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	if err := format.Validate(c.QuoteFormat()); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := c.QuotePlaceholders().Validate(); err != nil {
		return fmt.Errorf("placeholders: %w", err)
	}
	return nil
}

// QuoteFormat returns the format section as domain format config
func (c *Config) QuoteFormat() domain.FormatConfig {
	res := domain.FormatConfig{
		QuoteTemplate: c.Format.QuoteTemplate,
		TagTemplate:   c.Format.TagTemplate,
		ShowTags:      c.Format.ShowTags,
		TagPrefix:     "#",
		TagSeparator:  c.Format.TagSeparator,
	}
	if c.Format.ShowTagHash != nil && !*c.Format.ShowTagHash {
		res.TagPrefix = ""
	}
	return res
}

// QuotePlaceholders returns the placeholder tokens
func (c *Config) QuotePlaceholders() domain.Placeholders {
	return domain.Placeholders{Random: c.Placeholders.Random, Filtered: c.Placeholders.Filtered}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their yaml names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationErrors converts validator errors to a readable format
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}
	return fmt.Errorf("%s", strings.Join(errs, "; "))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest // drop root struct name
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
