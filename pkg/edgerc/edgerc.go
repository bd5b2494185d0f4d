// Package edgerc resolves API credentials from an INI-style .edgerc file.
//
// The file location is taken from an explicit path, then $AKAMAI_EDGERC, then
// ~/.edgerc. The section is taken from an explicit name, then
// $AKAMAI_EDGERC_SECTION, then "default". Parsing is done by the EdgeGrid
// library; its errors are mapped onto the sentinels below.
package edgerc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/akamai/AkamaiOPEN-edgegrid-golang/v9/pkg/edgegrid"
	"github.com/caarlos0/env/v9"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultSection is used when no section is named anywhere.
	DefaultSection = "default"
	// DefaultMaxBody is the number of POST body bytes included in request signatures.
	DefaultMaxBody = 131072

	defaultFile = ".edgerc"
)

var (
	// ErrUnreadable means the credentials file could not be read.
	ErrUnreadable = errors.New("edgerc: credentials file is not readable")
	// ErrSectionNotFound means the named section is absent from the file.
	ErrSectionNotFound = errors.New("edgerc: section not found")
	// ErrInvalid covers every other parsing or validation failure.
	ErrInvalid = errors.New("edgerc: invalid credentials")
)

// Credentials is one section of a .edgerc file.
type Credentials struct {
	Host         string `edgerc:"host" validate:"required,endsnotwith=/"`
	ClientToken  string `edgerc:"client_token" validate:"required"`
	ClientSecret string `edgerc:"client_secret" validate:"required"`
	AccessToken  string `edgerc:"access_token" validate:"required"`
	MaxBody      int    `edgerc:"max_body" validate:"gte=0"`

	// Section is the name the credentials were read from.
	Section string `edgerc:"-" validate:"-"`
	// Signer signs requests with these credentials.
	Signer *edgegrid.Config `edgerc:"-" validate:"-"`
}

// BaseURL returns the HTTPS origin for the credentials' API host.
func (c *Credentials) BaseURL() string {
	host := c.Host
	if strings.HasPrefix(host, "https://") || strings.HasPrefix(host, "http://") {
		return host
	}
	return "https://" + host
}

// Options selects the file and section to load. Empty fields fall back to
// the environment and then to the defaults.
type Options struct {
	Path    string
	Section string
}

type environment struct {
	Path    string `env:"AKAMAI_EDGERC"`
	Section string `env:"AKAMAI_EDGERC_SECTION"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("edgerc"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Resolve fills in the path and section from the environment and defaults.
func Resolve(opts Options) (Options, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return opts, fmt.Errorf("%w: reading environment: %v", ErrInvalid, err)
	}

	if opts.Path == "" {
		opts.Path = e.Path
	}
	if opts.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return opts, fmt.Errorf("%w: locating home directory: %v", ErrUnreadable, err)
		}
		opts.Path = filepath.Join(home, defaultFile)
	}
	path, err := expandHome(opts.Path)
	if err != nil {
		return opts, err
	}
	opts.Path = path

	if opts.Section == "" {
		opts.Section = e.Section
	}
	if opts.Section == "" {
		opts.Section = DefaultSection
	}
	return opts, nil
}

// Load resolves opts and reads the selected section.
func Load(opts Options) (*Credentials, error) {
	opts, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := checkReadable(opts.Path); err != nil {
		return nil, err
	}

	cfg, err := edgegrid.New(edgegrid.WithFile(opts.Path), edgegrid.WithSection(opts.Section))
	if err != nil {
		return nil, classify(err, opts)
	}

	creds := &Credentials{
		Host:         strings.TrimSpace(cfg.Host),
		ClientToken:  cfg.ClientToken,
		ClientSecret: cfg.ClientSecret,
		AccessToken:  cfg.AccessToken,
		MaxBody:      cfg.MaxBody,
		Section:      opts.Section,
		Signer:       cfg,
	}
	if creds.MaxBody == 0 {
		creds.MaxBody = DefaultMaxBody
		cfg.MaxBody = DefaultMaxBody
	}

	if err := validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("%w: section %q: %s", ErrInvalid, opts.Section, describe(err))
	}
	return creds, nil
}

// checkReadable separates "cannot open the file" from "cannot parse it",
// which the library reports with the same error.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}
	return nil
}

func classify(err error, opts Options) error {
	switch {
	case errors.Is(err, edgegrid.ErrSectionDoesNotExist):
		return fmt.Errorf("%w: %q in %s", ErrSectionNotFound, opts.Section, opts.Path)
	default:
		// ErrLoadingFile lands here too: the file was readable, so it is malformed.
		return fmt.Errorf("%w: section %q: %v", ErrInvalid, opts.Section, err)
	}
}

// describe turns validator errors into "host is required, ..." form.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "endsnotwith":
			parts = append(parts, fmt.Sprintf("%s must not end with %q", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: expanding %s: %v", ErrUnreadable, path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
