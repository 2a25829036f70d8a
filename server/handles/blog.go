package handles

import (
	"github.com/gin-gonic/gin"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/server/common"
	"github.com/dongdio/OpenBlog/utility/errs"
)

// Snapshots is the read side of the state published at startup.
type Snapshots interface {
	Themes() []model.Theme
	Theme(id string) (model.Theme, bool)
	Emoji() *emoji.Map
}

// ThemeNamer reports the active theme.
type ThemeNamer interface {
	ActiveTheme() string
}

// Readmes renders theme introductions.
type Readmes interface {
	Readme(id string) ([]byte, error)
}

type Blog struct {
	snapshots Snapshots
	themes    ThemeNamer
	readmes   Readmes
}

func NewBlog(snapshots Snapshots, themes ThemeNamer, readmes Readmes) *Blog {
	return &Blog{snapshots: snapshots, themes: themes, readmes: readmes}
}

func (b *Blog) ListThemes(c *gin.Context) {
	themes := b.snapshots.Themes()
	if themes == nil {
		themes = []model.Theme{}
	}
	active := b.themes.ActiveTheme()
	resp := make([]ThemeResp, 0, len(themes))
	for _, t := range themes {
		resp = append(resp, ThemeResp{Theme: t, Activated: t.ID == active})
	}
	common.SuccessResp(c, resp)
}

func (b *Blog) GetTheme(c *gin.Context) {
	id := c.Param("id")
	t, ok := b.snapshots.Theme(id)
	if !ok {
		common.ErrorResp(c, errs.NewErr(errs.ThemeNotFound, "id %s", id), 404)
		return
	}
	common.SuccessResp(c, ThemeResp{Theme: t, Activated: t.ID == b.themes.ActiveTheme()})
}

func (b *Blog) ThemeReadme(c *gin.Context) {
	id := c.Param("id")
	html, err := b.readmes.Readme(id)
	if err != nil {
		if errs.IsNotFoundError(err) {
			common.ErrorResp(c, err, 404)
			return
		}
		common.ErrorResp(c, errs.WithMessage(err, "failed render readme"), 500, true)
		return
	}
	c.Data(200, "text/html; charset=utf-8", html)
}

func (b *Blog) ActiveTheme(c *gin.Context) {
	common.SuccessResp(c, gin.H{consts.Theme: b.themes.ActiveTheme()})
}

func (b *Blog) Emoji(c *gin.Context) {
	common.SuccessResp(c, b.snapshots.Emoji())
}

type ThemeResp struct {
	model.Theme
	Activated bool `json:"activated"`
}
