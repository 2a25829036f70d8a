package initialize

import (
	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/utility/errs"
	"github.com/dongdio/OpenBlog/utility/utils"
)

// DefaultOptions returns the options every installation starts with.
func DefaultOptions() []model.Option {
	return []model.Option{
		{Key: consts.IsInstalled, Value: "false", Type: model.TypeBool, Internal: true},
		{Key: consts.BlogTitle, Value: "OpenBlog", Type: model.TypeString},
		{Key: consts.BlogURL, Value: "", Type: model.TypeString},
		{Key: consts.Theme, Value: consts.DefaultTheme, Type: model.TypeString},
	}
}

// initOptions stores the default options that are missing. Stored values
// are never overwritten.
func initOptions() {
	var missing []model.Option
	for _, item := range DefaultOptions() {
		_, err := op.GetOptionByKey(item.Key)
		if err == nil {
			continue
		}
		if !errs.Is(err, errs.OptionNotFound) {
			utils.Log.Fatalf("failed get option %s: %+v", item.Key, err)
		}
		missing = append(missing, item)
	}
	if len(missing) == 0 {
		return
	}
	if err := op.SaveOptions(missing); err != nil {
		utils.Log.Fatalf("failed save options: %+v", err)
	}
	utils.Log.Infof("initialized %d default options", len(missing))
}
