// Package organizer drives a sorting run: classify each file, resolve
// its timestamp, and place it into the year/month destination tree.
package organizer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/On-Jun9/MediaSort/internal/classify"
	"github.com/On-Jun9/MediaSort/internal/config"
	"github.com/On-Jun9/MediaSort/internal/copier"
	"github.com/On-Jun9/MediaSort/internal/log"
	"github.com/On-Jun9/MediaSort/internal/metadata"
	"github.com/On-Jun9/MediaSort/internal/planner"
	"github.com/On-Jun9/MediaSort/internal/policy"
	"github.com/On-Jun9/MediaSort/internal/scanner"
	"github.com/On-Jun9/MediaSort/internal/verify"
	"github.com/On-Jun9/MediaSort/pkg/types"
)

// Organizer processes files strictly one at a time. The collision
// counter is re-derived from the destination directory listing per
// file, which is only safe because nothing runs concurrently.
type Organizer struct {
	cfg              *config.Config
	scanner          *scanner.Scanner
	classifier       *classify.Classifier
	resolver         *metadata.Resolver
	planner          *planner.Planner
	conflict         *policy.ConflictResolver
	dedup            *policy.DedupChecker
	copier           *copier.Copier
	verifier         *verify.Verifier
	logger           *log.Logger
	exceptions       *log.ExceptionLog
	progressCallback ProgressCallback
	startTime        time.Time
}

func New(cfg *config.Config) (*Organizer, error) {
	logger, err := log.New(cfg.LogFile, cfg.LogJSON, true)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	p := planner.New(cfg.Dest, cfg.ImageDirName, cfg.VideoDirName, cfg.UnknownDirName)
	if err := makeDirectories(cfg.Dest, p.CategoryRoots()); err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to create category directories: %w", err)
	}

	return &Organizer{
		cfg:        cfg,
		scanner:    scanner.New(cfg.IncludeExtensions, cfg.Recursive),
		classifier: classify.New(cfg.ParseMode),
		resolver:   metadata.NewResolver(),
		planner:    p,
		conflict:   policy.NewConflictResolver(),
		dedup:      policy.NewDedupChecker(cfg.SkipIdentical),
		copier:     copier.New(cfg.TransferMode, cfg.DryRun),
		verifier:   verify.New(cfg.HashVerify),
		logger:     logger,
		exceptions: log.NewExceptionLog(cfg.Dest, startTime),
		startTime:  startTime,
	}, nil
}

// makeDirectories creates the destination root and the three category
// directories. Creation is idempotent: existing directories are fine.
func makeDirectories(dest string, categoryRoots []string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, dir := range categoryRoots {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

func (o *Organizer) SetProgressCallback(cb ProgressCallback) {
	o.progressCallback = cb
}

// Run processes the source tree. Classification and metadata failures
// are absorbed (logged, file lands in the unknown category or falls
// back to mtime); filesystem errors during placement abort the run.
func (o *Organizer) Run() (*types.RunSummary, error) {
	o.logger.Info("Starting scan: '" + o.cfg.Source + "'")

	entries, err := o.scanner.Scan(o.cfg.Source)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Found " + strconv.Itoa(len(entries)) + " files")

	summary := &types.RunSummary{
		TotalFiles: len(entries),
		StartTime:  o.startTime,
	}

	for i, entry := range entries {
		o.reportProgress(i+1, len(entries), entry.Name)

		kind, probeErr := o.classifier.Classify(entry)
		if probeErr != nil {
			o.exceptions.Log(entry.Path, probeErr)
			o.logger.Error("classification probe failed: "+entry.Path, probeErr)
		}

		resolved := o.resolver.Resolve(entry, kind)
		task := o.planner.Plan(entry, kind, resolved)

		isDup, dupErr := o.dedup.IsDuplicate(entry, task.DestPath)
		if dupErr != nil {
			// Fall through to normal placement, but leave a trace.
			o.logger.Error("duplicate check failed: "+entry.Path, dupErr)
		} else if isDup {
			task.Action = types.ActionSkipped
			summary.Skipped++
			o.logger.LogTask(task)
			continue
		}

		resolution, err := o.conflict.Resolve(&task)
		if err != nil {
			return summary, err
		}
		task.DestPath = resolution.DestPath
		task.Action = resolution.Action

		if err := o.copier.Place(&task); err != nil {
			task.Error = err.Error()
			o.logger.LogTask(task)
			return summary, err
		}

		if !o.cfg.DryRun {
			if err := o.verifier.Verify(&task, o.cfg.TransferMode); err != nil {
				task.Error = err.Error()
				o.logger.LogTask(task)
				return summary, err
			}
		}

		switch kind {
		case types.KindImage:
			summary.TotalImages++
		case types.KindVideo:
			summary.TotalVideos++
		default:
			summary.TotalUnknown++
		}
		if task.Action == types.ActionRenamed {
			summary.Renamed++
		}
		summary.BytesPlaced += entry.Size

		o.logger.LogTask(task)
	}

	summary.Exceptions = o.exceptions.Count()
	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)

	o.logger.Summary(*summary)

	if o.progressCallback != nil {
		o.progressCallback(ProgressUpdate{
			Type:    "complete",
			Summary: summary,
		})
	}

	return summary, nil
}

func (o *Organizer) reportProgress(current, total int, filename string) {
	if o.progressCallback == nil {
		return
	}
	o.progressCallback(ProgressUpdate{
		Type:     "progress",
		Message:  fmt.Sprintf("Processing file %d of %d", current, total),
		Percent:  fmt.Sprintf("%.1f%%", float64(current)/float64(total)*100),
		Current:  current,
		Total:    total,
		Filename: filename,
	})
}

func (o *Organizer) Close() error {
	o.exceptions.Close()
	return o.logger.Close()
}
