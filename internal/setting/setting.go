package setting

import (
	"strconv"
	"strings"

	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/utility/errs"
)

func GetStr(key string, defaultValue ...string) string {
	val, err := op.GetOptionByKey(key)
	if err != nil || val.Value == "" {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}
	return val.Value
}

func GetInt(key string, defaultVal int) int {
	i, err := strconv.Atoi(GetStr(key))
	if err != nil {
		return defaultVal
	}
	return i
}

func GetBool(key string, defaultVal ...bool) bool {
	b, err := strconv.ParseBool(GetStr(key))
	if err != nil {
		if len(defaultVal) > 0 {
			return defaultVal[0]
		}
		return false
	}
	return b
}

// GetBoolE reads a bool option. A missing or empty option is false; a read
// failure or an unparsable value is returned as an error.
func GetBoolE(key string) (bool, error) {
	item, err := op.GetOptionByKey(key)
	if err != nil {
		if errs.Is(err, errs.OptionNotFound) {
			return false, nil
		}
		return false, err
	}
	v := strings.TrimSpace(item.Value)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.Wrapf(err, "option %s is not a bool", key)
	}
	return b, nil
}

// Store exposes the package accessors as a value for components that take
// an option store dependency.
type Store struct{}

func (Store) GetStr(key string) string {
	return GetStr(key)
}

func (Store) GetBoolE(key string) (bool, error) {
	return GetBoolE(key)
}
