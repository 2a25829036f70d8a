package main

import "github.com/dongdio/OpenBlog/cmd"

func main() {
	cmd.Execute()
}
