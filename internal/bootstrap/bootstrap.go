// Package bootstrap runs the one-shot initialization pipeline executed once the
// application context is assembled.
package bootstrap

import (
	"sync/atomic"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
	"github.com/dongdio/OpenBlog/utility/net"
)

// Fixed credentials of the account created in development mode.
const (
	TestUsername = "test"
	TestNickname = "developer"
	TestEmail    = "test@test.com"
	TestPassword = "opentest"
)

type step struct {
	name  string
	fatal bool
	run   func() (Outcome, error)
}

// Initializer runs the startup pipeline at most once per process.
type Initializer struct {
	deps Deps
	env  Env
	ran  atomic.Bool
}

func New(deps Deps, env Env) *Initializer {
	if env.HostIP == nil {
		env.HostIP = net.GetMachineIP
	}
	return &Initializer{deps: deps, env: env}
}

// Ran reports whether Run has been called.
func (i *Initializer) Ran() bool {
	return i.ran.Load()
}

func (i *Initializer) steps() []step {
	return []step{
		{name: "cache_themes", run: i.cacheThemes},
		{name: "cache_emoji", run: i.cacheEmoji},
		{name: "cache_active_theme", run: i.cacheActiveTheme},
		{name: "print_banner", run: i.printBanner},
		{name: "init_themes", fatal: true, run: i.initThemes},
		{name: "init_test_user", run: i.initTestUser},
	}
}

// Run executes the pipeline in order. Recoverable failures are logged and the
// pipeline goes on; the first fatal failure stops it and is returned.
// Calls after the first return errs.AlreadyBootstrapped and do nothing.
func (i *Initializer) Run() ([]Result, error) {
	if !i.ran.CompareAndSwap(false, true) {
		return nil, errs.AlreadyBootstrapped
	}
	logger := log.WithField("bootstrap", uuid.NewString())

	steps := i.steps()
	results := make([]Result, 0, len(steps))
	for _, s := range steps {
		outcome, err := s.run()
		if err != nil {
			outcome = Degraded
			if s.fatal {
				outcome = Fatal
			}
		}
		results = append(results, Result{Step: s.name, Outcome: outcome, Err: err})

		entry := logger.WithField("step", s.name)
		switch outcome {
		case Fatal:
			entry.Errorf("%+v", err)
			return results, err
		case Degraded:
			entry.Errorf("%+v", err)
		default:
			entry.Debugf("step %s", outcome)
		}
	}
	return results, nil
}

func (i *Initializer) cacheThemes() (Outcome, error) {
	themes, err := i.deps.Themes.ListThemes()
	if err != nil {
		return Degraded, errs.Wrap(err, "failed to load themes")
	}
	if len(themes) == 0 {
		return Skipped, nil
	}
	i.deps.Site.SetThemes(themes)
	return Done, nil
}

// A broken emoji map only disables the picker; startup goes on.
func (i *Initializer) cacheEmoji() (Outcome, error) {
	m, err := i.deps.Emoji()
	if err != nil {
		i.deps.Site.SetEmoji(emoji.Empty())
		return Degraded, errs.Wrap(err, "failed to read owo json")
	}
	i.deps.Site.SetEmoji(m)
	return Done, nil
}

func (i *Initializer) cacheActiveTheme() (Outcome, error) {
	name := i.deps.Options.GetStr(consts.Theme)
	if name == "" {
		name = consts.DefaultTheme
	}
	if err := i.deps.Variables.SetSharedVariable(consts.ThemeNameVariable, name); err != nil {
		return Degraded, errs.Wrapf(err, "failed to publish active theme %s", name)
	}
	return Done, nil
}

// BaseURL returns the externally reachable url of the blog.
func (i *Initializer) BaseURL() string {
	return ResolveBaseURL(i.deps.Options.GetStr(consts.BlogURL), i.env.Port, i.env.HostIP)
}

func (i *Initializer) printBanner() (Outcome, error) {
	blogURL := i.BaseURL()
	log.Infof("blog started at         %s", blogURL)
	log.Infof("blog admin started at   %s/admin", blogURL)
	if !i.env.DocDisabled {
		log.Debugf("blog doc was enabled at  %s/swagger-ui.html", blogURL)
	}
	return Done, nil
}

// initThemes copies the bundled themes on the first start only. A half
// installed theme directory cannot be recovered from, so any error is fatal.
// An unreadable install marker is fatal as well and copies nothing.
func (i *Initializer) initThemes() (Outcome, error) {
	installed, err := i.deps.Options.GetBoolE(consts.IsInstalled)
	if err != nil {
		return Fatal, errs.Wrapf(err, "failed read install marker %s", consts.IsInstalled)
	}
	if installed {
		return Skipped, nil
	}
	names, err := i.deps.Provisioner.Provision()
	if err != nil {
		return Fatal, errs.NewErr(errs.ThemeInitFailed, "%v", err)
	}
	log.Infof("installed bundled themes %v", names)
	return Done, nil
}

func (i *Initializer) initTestUser() (Outcome, error) {
	if i.env.ProductionEnv {
		return Skipped, nil
	}
	count, err := i.deps.Users.CountUsers()
	if err != nil {
		return Degraded, errs.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return Skipped, nil
	}
	user := &model.User{
		Username: TestUsername,
		Nickname: TestNickname,
		Email:    TestEmail,
		Role:     model.ADMIN,
	}
	log.Debugf("initializing a test user: [%s]", user.Username)
	if err = i.deps.Users.CreateUser(user, TestPassword); err != nil {
		return Degraded, errs.Wrap(err, "failed to create test user")
	}
	log.Debugf("initialized a test user: [%d %s]", user.ID, user.Username)
	return Done, nil
}
