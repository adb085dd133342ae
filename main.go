package main

import (
	"fmt"
	"os"

	"odict/config"
	"odict/datastruct/dict"
	"odict/logger"
	"odict/shell"
)

var banner = `
           ___      __
  ____  __/ (_)____/ /_
 / __ \/ __/ / ___/ __/
/ /_/ / /_/ / /__/ /_
\____/\__,_/_/\___/\__/
`

func fileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}

// runScript 在一个新字典上执行脚本文件中的命令
func runScript(path string, opts *dict.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	engine, err := shell.NewEngine(opts)
	if err != nil {
		return err
	}
	return engine.Run(f, os.Stdout)
}

func run() int {
	if fileExists("odict.yaml") {
		if err := config.SetupConfig("odict.yaml"); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if err := logger.Setup(&config.Config.Log, config.Config.Level()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.DefaultLogger.Close()

	opts := config.Config.DictOptions(logger.DefaultLogger)
	var err error
	if len(os.Args) > 1 {
		logger.Infof("running script %s", os.Args[1])
		err = runScript(os.Args[1], opts)
	} else {
		err = runDemo(os.Stdout, opts)
	}
	if err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}

func main() {
	print(banner)
	os.Exit(run())
}
