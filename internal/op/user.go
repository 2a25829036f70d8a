package op

import (
	"strings"
	"time"

	"github.com/Xhofe/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/dongdio/OpenBlog/internal/db"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
)

// Cache for storing user information
var userCache = cache.NewMemCache(cache.WithShards[*model.User](2))

// Group for preventing duplicate user queries
var userG singleflight.Group

// GetAdmin returns the first administrator account
func GetAdmin() (*model.User, error) {
	return db.GetUserByRole(model.ADMIN)
}

// GetUserByName retrieves a user by username, using cache when available
func GetUserByName(username string) (*model.User, error) {
	if username == "" {
		return nil, errs.EmptyUsername
	}

	if user, ok := userCache.Get(username); ok {
		return user, nil
	}

	v, err, _ := userG.Do(username, func() (any, error) {
		user, err := db.GetUserByName(username)
		if err != nil {
			return nil, err
		}
		userCache.Set(username, user, cache.WithEx[*model.User](time.Hour))
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.User), nil
}

// ListUsers returns every account ordered by id
func ListUsers() ([]model.User, error) {
	return db.GetUsers()
}

// CountUsers returns the number of accounts
func CountUsers() (int64, error) {
	return db.CountUsers()
}

// CreateUser hashes rawPassword into user and stores it.
// The username must not be taken.
func CreateUser(user *model.User, rawPassword string) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return errs.EmptyUsername
	}
	if rawPassword == "" {
		return errs.EmptyPassword
	}
	if _, err := db.GetUserByName(user.Username); err == nil {
		return errs.NewErr(errs.UserExists, "username %s", user.Username)
	} else if !errs.Is(err, errs.UserNotFound) {
		return err
	}
	if err := user.SetPassword(rawPassword); err != nil {
		return errs.Wrap(err, "failed hash password")
	}
	userCache.Del(user.Username)
	return db.CreateUser(user)
}

// Directory exposes the user operations as a value.
type Directory struct{}

func (Directory) CountUsers() (int64, error) {
	return CountUsers()
}

func (Directory) CreateUser(user *model.User, rawPassword string) error {
	return CreateUser(user, rawPassword)
}
