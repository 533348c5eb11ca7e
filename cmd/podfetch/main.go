package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"podfetch/internal/app/podfetch"
	"podfetch/internal/app/podfetch/proc"
	"podfetch/internal/configs"
)

var opts struct {
	Conf  string `short:"c" long:"conf" env:"PODFETCH_CONF" default:"podfetch.yml" description:"config file (yml)"`
	Links string `short:"l" long:"links" env:"PODFETCH_LINKS" description:"file with one media url per line"`
	Out   string `short:"o" long:"out" env:"PODFETCH_OUT" description:"root download directory"`
	Tag   bool   `short:"t" long:"tag" description:"write id3 tags to downloaded audio"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"show debug info"`
}

func checkFileExists(filepath string) bool {
	if _, err := os.Stat(filepath); errors.Is(err, os.ErrNotExist) {
		return false
	}

	return true
}

func main() {
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	if opts.Dbg {
		lgr.Setup(lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	conf := loadConfig()
	if opts.Links != "" {
		conf.LinksFile = opts.Links
	}
	if opts.Out != "" {
		conf.Download.Folder = opts.Out
	}
	if opts.Tag {
		conf.Tags.Enabled = true
	}

	if conf.LinksFile == "" {
		log.Fatal("[ERROR] no links file, use --links or set links_file in config")
	}

	procEntity := &proc.Processor{
		Fetcher: proc.NewFetcher(conf.Download.UserAgent, time.Duration(conf.Download.Timeout)*time.Second),
		Files:   &proc.Files{},
	}
	if conf.Tags.Enabled {
		procEntity.Tagger = &proc.Tagger{Artist: conf.Tags.Artist, Album: conf.Tags.Album}
	}

	app, err := podfetch.NewApplication(conf, procEntity)
	if err != nil {
		log.Fatalf("[ERROR] can't create app, %v", err)
	}

	stats, err := app.Run(context.Background())
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	if stats.Complete != stats.Episodes {
		os.Exit(1)
	}
}

func loadConfig() *configs.Conf {
	configFile := opts.Conf
	if !checkFileExists(configFile) {
		configFile = "configs/podfetch.yaml"
	}
	if !checkFileExists(configFile) {
		return configs.Default()
	}

	conf, err := configs.Load(configFile)
	if err != nil {
		log.Fatalf("[ERROR] can't load config %s, %v", opts.Conf, err)
	}

	return conf
}
