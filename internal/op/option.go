package op

import (
	"time"

	"github.com/Xhofe/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/dongdio/OpenBlog/internal/db"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
)

// Cache for storing individual options
var optionCache = cache.NewMemCache(cache.WithShards[*model.Option](4))
var optionG singleflight.Group

var optionCacheF = func(item *model.Option) {
	optionCache.Set(item.Key, item, cache.WithEx[*model.Option](time.Hour))
}

// Callbacks to be executed when options change
var optionChangingCallbacks = make([]func(), 0)

// RegisterOptionChangingCallback registers a function to be called
// when options are updated
func RegisterOptionChangingCallback(f func()) {
	optionChangingCallbacks = append(optionChangingCallbacks, f)
}

// OptionCacheUpdate clears the option cache and executes
// registered change callbacks
func OptionCacheUpdate() {
	optionCache.Clear()
	for _, cb := range optionChangingCallbacks {
		cb()
	}
}

// GetOptions retrieves all options straight from the database
func GetOptions() ([]model.Option, error) {
	return db.GetOptions()
}

// GetOptionsMap returns all options as key-value pairs
func GetOptionsMap() map[string]string {
	items, _ := GetOptions()
	options := make(map[string]string, len(items))
	for _, item := range items {
		options[item.Key] = item.Value
	}
	return options
}

// GetOptionByKey retrieves an option by its key, using cache when available
func GetOptionByKey(key string) (*model.Option, error) {
	if item, ok := optionCache.Get(key); ok {
		return item, nil
	}

	// Use singleflight to prevent duplicate database queries
	v, err, _ := optionG.Do(key, func() (any, error) {
		item, err := db.GetOptionByKey(key)
		if err != nil {
			return nil, err
		}
		optionCacheF(item)
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Option), nil
}

// SaveOption stores a single option and refreshes the caches
func SaveOption(item *model.Option) error {
	if item.Key == "" {
		return errs.NewErr(errs.OptionNotFound, "empty option key")
	}
	if err := db.SaveOption(item); err != nil {
		return err
	}
	OptionCacheUpdate()
	return nil
}

// SaveOptions stores several options at once and refreshes the caches
func SaveOptions(items []model.Option) error {
	if err := db.SaveOptions(items); err != nil {
		return err
	}
	OptionCacheUpdate()
	return nil
}

// SetOptionValue updates the value of key, creating the option when missing
func SetOptionValue(key, value string) error {
	item, err := GetOptionByKey(key)
	if err != nil {
		if !errs.Is(err, errs.OptionNotFound) {
			return err
		}
		item = &model.Option{Key: key, Type: model.TypeString}
	}
	updated := *item
	updated.Value = value
	return SaveOption(&updated)
}

// DeleteOptionByKey removes an option
func DeleteOptionByKey(key string) error {
	if err := db.DeleteOptionByKey(key); err != nil {
		return err
	}
	OptionCacheUpdate()
	return nil
}
