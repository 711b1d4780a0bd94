package model

import (
	"github.com/fsnotify/fsnotify"

	"github.com/postbox-tui/postbox/pkg/config"
	"github.com/postbox-tui/postbox/pkg/generator"
	"github.com/postbox-tui/postbox/pkg/store"
)

// True if we're logging to a file, in which case we'll log more stuff.
var debug = false

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg      *config.Config
	provider *store.Provider
	width    int
	height   int
}

// Model is the root composition. It owns the provider scope, the theme
// flag, and the top-level view state; everything below it resolves shared
// state through the provider.
type Model struct {
	common     *commonModel
	state      state
	feed       feedModel
	pager      pagerModel
	darkMode   bool
	fatalErr   error
	configPath string
	watcher    *fsnotify.Watcher
}

func NewFromConfigFile(path string, dbg bool) (*Model, error) {
	cfg, err := config.NewFromFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := config.Watch(path)
	if err != nil {
		return nil, err
	}

	return New(cfg, path, watcher, dbg)
}

func New(cfg *config.Config, configPath string, watcher *fsnotify.Watcher, dbg bool) (*Model, error) {
	debug = dbg

	gen := generator.New(cfg.RandomSeed)

	// The board starts out seeded with a batch of fresh posts. The store is
	// the single owner of the canonical collection from here on.
	st := store.New(gen.Posts(cfg.SeedPosts))
	provider := store.NewProvider(st)
	provider.Open()

	common := &commonModel{
		cfg:      cfg,
		provider: provider,
	}

	m := Model{
		common:     common,
		state:      stateShowFeed,
		feed:       newFeedModel(common, gen),
		pager:      newPagerModel(common),
		darkMode:   cfg.DarkMode,
		configPath: configPath,
		watcher:    watcher,
	}

	return &m, nil
}
