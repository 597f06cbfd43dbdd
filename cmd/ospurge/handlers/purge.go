// Package handlers implements the command logic behind the ospurge CLI.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"

	"github.com/imamik/ospurge/internal/config"
	"github.com/imamik/ospurge/internal/logging"
	"github.com/imamik/ospurge/internal/metrics"
	"github.com/imamik/ospurge/internal/platform/openstack"
	"github.com/imamik/ospurge/internal/platform/s3"
	"github.com/imamik/ospurge/internal/purge"
	"github.com/imamik/ospurge/internal/report"
	"github.com/imamik/ospurge/internal/ui/tui"
)

// ErrAborted is returned when the confirmation prompt is declined.
var ErrAborted = errors.New("purge aborted")

// PurgeOptions holds the command line settings of a purge. Empty strings and
// false booleans leave the configuration file value in place.
type PurgeOptions struct {
	ConfigPath   string
	Cloud        string
	Project      string
	KeepProject  bool
	Check        bool
	Yes          bool
	Output       string
	LogFormat    string
	Verbose      bool
	Pushgateway  string
	ReportBucket string
	TUI          bool
}

// reportArchiver uploads JSON reports to object storage.
type reportArchiver interface {
	ArchiveReport(ctx context.Context, loc s3.Location, project string, data []byte, at time.Time) (string, error)
}

// Factory function variables for purge - can be replaced in tests.
var (
	loadConfig = config.LoadOptional

	newCloud = func(ctx context.Context, cloud string, log logr.Logger) (purge.Cloud, error) {
		client, err := openstack.Connect(ctx, cloud, openstack.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	newArchiver = func(ctx context.Context, opts s3.Options) (reportArchiver, error) {
		client, err := s3.NewClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	confirmPurge  = confirm
	isInteractive = tui.IsInteractive
	runTUI        = tui.RunPurgeTUI

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	now              = time.Now
)

// Purge handles the purge command.
//
// It merges flags over the configuration file, asks for confirmation on a
// terminal, runs the purge and writes the report. Pushing metrics and
// archiving the report happen afterwards and only log a warning on failure.
func Purge(ctx context.Context, opts PurgeOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	mergeFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, flush, err := logging.New(logging.Options{Verbose: cfg.Verbose, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		return err
	}
	defer flush()

	interactive := isInteractive()
	if !cfg.Check && !opts.Yes && interactive {
		ok, err := confirmPurge(ctx, cfg.Project, cfg.KeepProject)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return ErrAborted
		}
	}

	cloud, err := newCloud(ctx, cfg.Cloud, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	recorder := metrics.NewRecorder()
	run := func(observer purge.Observer) (*purge.Result, error) {
		p := purge.New(cloud,
			purge.WithLogger(log),
			purge.WithObserver(purge.Observers{recorder, observer}),
		)
		return p.Run(ctx, purge.Options{
			Project:     cfg.Project,
			KeepProject: cfg.KeepProject,
			Check:       cfg.Check,
		})
	}

	var res *purge.Result
	var runErr error
	if opts.TUI && interactive && !cfg.Check {
		res, runErr = runTUI(cfg.Project, cancel, run)
		if errors.Is(runErr, tui.ErrInterrupted) {
			return runErr
		}
	} else {
		res, runErr = run(nil)
	}

	if res != nil {
		styled := cfg.Output == config.OutputText && interactive
		if err := report.Write(stdout, res, cfg.Output, styled); err != nil {
			log.Error(err, "Failed to write report")
		}
	}

	// The run context may be cancelled by now; follow-up uploads get their own.
	finishCtx := context.WithoutCancel(ctx)

	if cfg.Pushgateway != "" && !cfg.Check {
		if err := recorder.Push(finishCtx, cfg.Pushgateway, cfg.Project); err != nil {
			log.Error(err, "Warning: metrics push failed")
		} else {
			log.V(1).Info("Pushed metrics", "pushgateway", cfg.Pushgateway)
		}
	}

	if cfg.Archive.Enabled() && res != nil {
		url, err := archiveReport(finishCtx, cfg, res)
		if err != nil {
			log.Error(err, "Warning: report archive failed")
		} else {
			log.Info("Report archived", "location", url)
		}
	}

	return runErr
}

// mergeFlags copies the options that were set on the command line into cfg.
func mergeFlags(cfg *config.PurgeConfig, opts PurgeOptions) {
	setString(&cfg.Cloud, opts.Cloud)
	setString(&cfg.Project, opts.Project)
	setString(&cfg.Output, opts.Output)
	setString(&cfg.LogFormat, opts.LogFormat)
	setString(&cfg.Pushgateway, opts.Pushgateway)
	setString(&cfg.Archive.Bucket, opts.ReportBucket)
	cfg.KeepProject = cfg.KeepProject || opts.KeepProject
	cfg.Check = cfg.Check || opts.Check
	cfg.Verbose = cfg.Verbose || opts.Verbose
}

func setString(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// archiveReport uploads the JSON report to the configured bucket.
func archiveReport(ctx context.Context, cfg *config.PurgeConfig, res *purge.Result) (string, error) {
	loc, err := s3.ParseLocation(cfg.Archive.Bucket)
	if err != nil {
		return "", err
	}

	data, err := report.JSON(res)
	if err != nil {
		return "", err
	}

	archiver, err := newArchiver(ctx, s3.Options{
		Endpoint: cfg.Archive.Endpoint,
		Region:   cfg.Archive.Region,
	})
	if err != nil {
		return "", err
	}

	return archiver.ArchiveReport(ctx, loc, cfg.Project, data, now())
}

// confirm asks whether the project should really be purged.
func confirm(ctx context.Context, project string, keepProject bool) (bool, error) {
	description := "Every server, volume, network and image of the project is deleted, then the project itself."
	if keepProject {
		description = "Every server, volume, network and image of the project is deleted. The project is kept."
	}

	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Purge all resources of project %s?", project)).
				Description(description).
				Affirmative("Purge").
				Negative("Cancel").
				Value(&ok),
		),
	).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}
