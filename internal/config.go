package internal

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Source SourceConfig      `yaml:"source"`
	Output OutputConfig      `yaml:"output"`
	Site   SiteConfig        `yaml:"site"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Site.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// SourceConfig points at the flat directory of deck files.
type SourceConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Extension, validation.Required, validation.By(leadingDot)),
	)
}

// OutputConfig holds the path of the generated gallery document.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SiteConfig holds the values rendered into the gallery page.
//
// Lang is both the document language and the collation locale used when
// sorting categories and titles.
type SiteConfig struct {
	Title         string `yaml:"title"`
	Lang          string `yaml:"lang"`
	Favicon       string `yaml:"favicon"`
	Uncategorized string `yaml:"uncategorized"`
	AllLabel      string `yaml:"all_label"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Lang, validation.Required, validation.By(languageTag)),
		validation.Field(&c.Uncategorized, validation.Required),
		validation.Field(&c.AllLabel, validation.Required),
	)
}

// Tag returns the parsed Lang. Validate has already rejected bad tags.
func (c *SiteConfig) Tag() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und
	}
	return tag
}

func leadingDot(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !strings.HasPrefix(s, ".") {
		return validation.NewError("validation_extension_dot", "must start with a dot")
	}
	return nil
}

func languageTag(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := language.Parse(s); err != nil {
		return validation.NewError("validation_language_tag", "must be a BCP 47 language tag")
	}
	return nil
}

// NewDefaultConfig returns a Config whose values reproduce the fixed
// ppts/ → index.html layout.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Source: SourceConfig{
			Dir:       "./ppts",
			Extension: ".html",
		},
		Output: OutputConfig{
			Path: "./index.html",
		},
		Site: SiteConfig{
			Title:         "PPT Gallery",
			Lang:          "zh-CN",
			Favicon:       "favicon.svg",
			Uncategorized: "未分类",
			AllLabel:      "全部",
		},
	}
}
