package fragmentbridge

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/config"
	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/logging"
	"github.com/navicore/fragment-bridge/pkg/tools"
	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
)

// callFlags are the per-invocation switches of the call command
type callFlags struct {
	protect     bool
	maxChars    int
	downloadPDF bool
	render      bool
	copy        bool
	width       int
}

// environment is everything a subcommand needs
type environment struct {
	cfg     config.Config
	logger  *zap.Logger
	loaders *fragments.Registry
	manager *tools.ToolManager
}

// loadAndMergeConfig loads the configuration file and merges it with command line flags
func loadAndMergeConfig(f *flags, cf *callFlags) (config.Config, error) {
	cfg, err := config.LoadConfig(f.configFile)
	if err != nil {
		return cfg, err
	}

	if f.debugMode {
		cfg.App.Debug = true
	}
	if f.onlyAvailable {
		cfg.Bridge.OnlyAvailable = true
	}

	if cf != nil {
		if cf.protect {
			cfg.Bridge.Protection = true
		}
		if cf.maxChars > 0 {
			cfg.Bridge.MaxContentChars = cf.maxChars
		}
		if cf.downloadPDF {
			cfg.Bridge.DownloadRemotePDF = true
		}
	}

	return cfg, nil
}

func bridgeOptions(cfg config.Config) []bridge.Option {
	var opts []bridge.Option
	if cfg.Bridge.OnlyAvailable {
		opts = append(opts, bridge.OnlyAvailable())
	}
	if cfg.Bridge.Protection {
		opts = append(opts, bridge.WithProtection(cfg.Bridge.MaxContentChars))
	}
	if cfg.Bridge.DownloadRemotePDF {
		opts = append(opts, bridge.WithRemotePDFDownload(&http.Client{Timeout: cfg.DownloadTimeoutDuration()}))
	}
	return opts
}

// setup loads configuration, builds the logger and loaders and registers
// the bridge tools
func setup(f *flags, cf *callFlags) (*environment, error) {
	cfg, err := loadAndMergeConfig(f, cf)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.App)
	if err != nil {
		return nil, err
	}

	loaders, err := cfg.BuildLoaders()
	if err != nil {
		return nil, err
	}
	logger.Debug("fragment loaders configured", zap.Strings("schemes", loaders.Schemes()))

	manager, err := tools.Initialize(logger, loaders, bridgeOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	if err := manager.EnableCategories(f.categories); err != nil {
		return nil, err
	}

	return &environment{
		cfg:     cfg,
		logger:  logger,
		loaders: loaders,
		manager: manager,
	}, nil
}
