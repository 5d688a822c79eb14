package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tagmint/tagmint/internal/config"
	"github.com/tagmint/tagmint/internal/repository"
	"github.com/tagmint/tagmint/internal/service"
	"github.com/tagmint/tagmint/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.

type container struct {
	cfg      *config.Config
	log      *zap.Logger
	logLevel zap.AtomicLevel

	promptSvc   service.PromptService
	historyRepo repository.HistoryRepository
}

// newContainer creates a new container with all the dependencies. The git
// repository is opened lazily so commands that do not touch the repository
// keep working outside of one.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = logLevel
	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &container{
		cfg:         cfg,
		log:         log,
		logLevel:    logLevel,
		promptSvc:   service.NewPromptService(),
		historyRepo: repository.NewJSONHistoryRepository(afero.NewOsFs(), cfg.HistoryDir),
	}, nil
}

// gitRepository opens the git repository of the working directory.
func (c *container) gitRepository() (repository.GitRepository, error) {
	return repository.NewGitRepository(c.cfg.Remote)
}

// tagSource resolves the tag source selected with --source.
func (c *container) tagSource(source string) (usecase.TagSource, error) {
	switch source {
	case "", "git":
		return c.gitRepository()
	case "github":
		if err := c.cfg.ValidateForGitHubOperations(); err != nil {
			return nil, err
		}
		return repository.NewGithubRepository(c.cfg.GithubToken, c.cfg.GithubOwner, c.cfg.GithubRepo)
	default:
		return nil, fmt.Errorf("unknown tag source %q: use git or github", source)
	}
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			c.logLevel.SetLevel(zapcore.DebugLevel)
		}
	}
	rootCmd.AddCommand(newNextCmd(c))
	rootCmd.AddCommand(newLatestCmd(c))
	rootCmd.AddCommand(newHistoryCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
