package cmd

import (
	"github.com/dongdio/OpenBlog/initialize"
	"github.com/dongdio/OpenBlog/internal/db"
)

// Init loads configuration and the database without running the startup pipeline
func Init() *initialize.App {
	return initialize.InitApp()
}

// Release performs cleanup operations before application shutdown
func Release() {
	db.Close()
}
