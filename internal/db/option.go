package db

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
)

func GetOptions() ([]model.Option, error) {
	var options []model.Option
	if err := GetDB().Find(&options).Error; err != nil {
		return nil, errs.WithStack(err)
	}
	return options, nil
}

func GetOptionByKey(key string) (*model.Option, error) {
	var option model.Option
	err := GetDB().Where(fmt.Sprintf("%s = ?", columnName("key")), key).First(&option).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.OptionNotFound)
		}
		return nil, errs.WithStack(err)
	}
	return &option, nil
}

func SaveOptions(items []model.Option) error {
	if len(items) == 0 {
		return nil
	}
	return errs.WithStack(GetDB().Save(items).Error)
}

func SaveOption(item *model.Option) error {
	return errs.WithStack(GetDB().Save(item).Error)
}

func DeleteOptionByKey(key string) error {
	return errs.WithStack(GetDB().Delete(&model.Option{Key: key}).Error)
}
