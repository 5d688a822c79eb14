package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/sethvargo/go-retry"
	"github.com/tagmint/tagmint/internal/domain"
	"github.com/tagmint/tagmint/internal/repository"
	"github.com/tagmint/tagmint/internal/service"
	"github.com/tagmint/tagmint/internal/usecase"
	"go.uber.org/zap"
)

// ReleaseConfig carries the flags of a single next-tag run.
type ReleaseConfig struct {
	Prefix    string
	Intent    domain.Intent
	Message   string
	AssumeYes bool
	DryRun    bool
	Push      bool
}

// ReleaseOrchestrator runs the next-tag workflow: propose the next tag from
// the configured source, confirm it interactively, create it at HEAD, push
// it, and record it in the local history.
type ReleaseOrchestrator struct {
	gitRepo   repository.GitRepository
	tagSource usecase.TagSource
	promptSvc service.PromptService
	history   repository.HistoryRepository
	log       *zap.Logger
	out       io.Writer
}

// NewReleaseOrchestrator creates a new ReleaseOrchestrator. The tag source
// may be the git repository itself or a GitHub API client.
func NewReleaseOrchestrator(
	gitRepo repository.GitRepository,
	tagSource usecase.TagSource,
	promptSvc service.PromptService,
	history repository.HistoryRepository,
	log *zap.Logger,
	out io.Writer,
) *ReleaseOrchestrator {
	return &ReleaseOrchestrator{
		gitRepo:   gitRepo,
		tagSource: tagSource,
		promptSvc: promptSvc,
		history:   history,
		log:       log,
		out:       out,
	}
}

// Execute runs the workflow.
func (o *ReleaseOrchestrator) Execute(ctx context.Context, cfg ReleaseConfig) error {
	propose := &usecase.ProposeTagUseCase{Source: o.tagSource, Log: o.log}
	proposed, err := propose.Execute(ctx, cfg.Prefix, cfg.Intent)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		fmt.Fprintln(o.out, proposed.String())
		return nil
	}
	final, err := o.confirm(cfg, proposed)
	if err != nil {
		return err
	}
	if final == nil {
		fmt.Fprintln(o.out, "aborted")
		return nil
	}
	return o.createAndPush(ctx, cfg, *final)
}

// confirm resolves the tag to create: the proposal, a user-entered
// replacement, or nil when the user aborts. A replacement that does not
// parse is a hard failure.
func (o *ReleaseOrchestrator) confirm(cfg ReleaseConfig, proposed domain.Tag) (*domain.Tag, error) {
	if cfg.AssumeYes {
		return &proposed, nil
	}
	answer, err := o.promptSvc.Input("Next tag", proposed.String())
	if err != nil {
		return nil, fmt.Errorf("failed to read tag confirmation: %w", err)
	}
	final := proposed
	if answer != proposed.String() {
		replacement, err := domain.ParseTag(answer)
		if err != nil {
			return nil, fmt.Errorf("entered tag is not valid: %w", err)
		}
		final = replacement
	}
	ok, err := o.promptSvc.Confirm(fmt.Sprintf("Create tag %s", final), true)
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &final, nil
}

func (o *ReleaseOrchestrator) createAndPush(ctx context.Context, cfg ReleaseConfig, tag domain.Tag) error {
	name := tag.String()
	exists, err := o.gitRepo.TagExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag %s already exists", name)
	}
	branch, err := o.gitRepo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	commit, err := o.gitRepo.HeadCommit(ctx)
	if err != nil {
		return err
	}
	msg := cfg.Message
	if msg == "" {
		msg = DefaultTagMessagePrefix + name
	}
	if err := o.gitRepo.CreateTag(ctx, name, msg); err != nil {
		return err
	}
	o.log.Info("created tag",
		zap.String("tag", name),
		zap.String("commit", commit),
		zap.String("branch", branch))
	pushed := false
	if cfg.Push {
		// Push with retry for transient network failures
		err := retry.Do(
			ctx,
			retry.WithMaxRetries(DefaultRetryCount, retry.NewExponential(DefaultRetryDelay)),
			func(retryCtx context.Context) error {
				if err := o.gitRepo.PushTag(retryCtx, name); err != nil {
					o.log.Warn("push failed, retrying", zap.String("tag", name), zap.Error(err))
					return retry.RetryableError(err)
				}
				return nil
			},
		)
		if err != nil {
			return fmt.Errorf("failed to push tag %s: %w", name, err)
		}
		pushed = true
		o.log.Info("pushed tag", zap.String("tag", name))
	}
	if err := o.history.Append(ctx, domain.NewTagRecord(tag, commit, branch, pushed)); err != nil {
		// The tag exists; a history write failure should not fail the run.
		o.log.Warn("failed to record tag in history", zap.Error(err))
	}
	fmt.Fprintf(o.out, "created %s at %s\n", name, commit)
	return nil
}
