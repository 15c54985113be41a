package main

import "github.com/jarair9/translation-video-generator/internal/cli"

func main() {
	cli.Main()
}
