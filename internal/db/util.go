package db

import (
	"fmt"

	"github.com/dongdio/OpenBlog/internal/conf"
)

func columnName(name string) string {
	if conf.Conf != nil && conf.Conf.Database.Type == "postgres" {
		return fmt.Sprintf(`"%s"`, name)
	}
	return fmt.Sprintf("`%s`", name)
}
