package db

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
)

func GetUserByName(username string) (*model.User, error) {
	var user model.User
	err := GetDB().Where(fmt.Sprintf("%s = ?", columnName("username")), username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.UserNotFound)
		}
		return nil, errs.WithStack(err)
	}
	return &user, nil
}

func GetUserByRole(role int) (*model.User, error) {
	var user model.User
	err := GetDB().Where(fmt.Sprintf("%s = ?", columnName("role")), role).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.UserNotFound)
		}
		return nil, errs.WithStack(err)
	}
	return &user, nil
}

func CreateUser(u *model.User) error {
	return errs.WithStack(GetDB().Create(u).Error)
}

func CountUsers() (int64, error) {
	var count int64
	if err := GetDB().Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, errs.WithStack(err)
	}
	return count, nil
}

func GetUsers() ([]model.User, error) {
	var users []model.User
	if err := GetDB().Order(columnName("id")).Find(&users).Error; err != nil {
		return nil, errs.WithStack(err)
	}
	return users, nil
}
