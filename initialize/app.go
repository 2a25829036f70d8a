package initialize

import (
	"github.com/spf13/afero"

	"github.com/dongdio/OpenBlog/internal/bootstrap"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/internal/render"
	"github.com/dongdio/OpenBlog/internal/setting"
	"github.com/dongdio/OpenBlog/internal/site"
	"github.com/dongdio/OpenBlog/internal/theme"
	"github.com/dongdio/OpenBlog/public"
)

// App is the application context shared by the server and the startup pipeline.
type App struct {
	Site     *site.State
	Engine   *render.Engine
	Registry *theme.Registry
	Starter  *bootstrap.Initializer
}

func InitApp(server ...bool) *App {
	InitConfig()
	initLog()
	initializeDB()
	initOptions()

	app := NewApp()
	if len(server) > 0 && server[0] {
		// only the server runs the startup pipeline
		app.Bootstrap()
	}
	return app
}

// NewApp assembles the application context from conf.Conf.
func NewApp() *App {
	app := &App{
		Site:     site.New(),
		Engine:   render.NewEngine(),
		Registry: theme.NewRegistry(afero.NewOsFs(), conf.Conf.ThemeDir),
	}
	app.Starter = bootstrap.New(bootstrap.Deps{
		Themes:      app.Registry,
		Options:     setting.Store{},
		Users:       op.Directory{},
		Variables:   app.Engine,
		Provisioner: theme.NewProvisioner(public.Themes, public.ThemesRoot, conf.Conf.ThemeDir),
		Emoji: func() (*emoji.Map, error) {
			return emoji.Load(public.Static, public.EmojiMapPath)
		},
		Site: app.Site,
	}, bootstrap.Env{
		Port:          conf.Conf.Port(),
		ProductionEnv: conf.Conf.ProductionEnv,
		DocDisabled:   conf.Conf.DocDisabled,
	})
	return app
}
