package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate checks that the configuration can drive a purge.
func (c *PurgeConfig) Validate() error {
	var errs []error

	if c.Cloud == "" {
		errs = append(errs, fmt.Errorf("cloud is required (use --cloud or %s)", EnvCloud))
	}
	if c.Project == "" {
		errs = append(errs, errors.New("project is required"))
	}

	if !slices.Contains(ValidOutputs(), c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of: %v", ValidOutputs()))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		errs = append(errs, fmt.Errorf("log_format must be %s or %s", LogFormatText, LogFormatJSON))
	}

	if c.Pushgateway != "" {
		u, err := url.Parse(c.Pushgateway)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("pushgateway must be an absolute URL, got %q", c.Pushgateway))
		}
	}

	if c.Archive.Enabled() && !strings.HasPrefix(c.Archive.Bucket, "s3://") {
		errs = append(errs, fmt.Errorf("archive.bucket must be an s3:// URL, got %q", c.Archive.Bucket))
	}

	return errors.Join(errs...)
}
