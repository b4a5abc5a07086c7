package main

import (
	"bufio"
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"minesweeper/internal/config"
	"minesweeper/internal/mines"
	"minesweeper/internal/session"
)

var (
	log = logrus.New()

	logPath string
)

func init() {
	const usage = "rotated log file path (defaults to $MINESWEEPER_LOG_FILE)"
	flag.StringVar(&logPath, "log", "", usage)
	flag.StringVar(&logPath, "l", "", usage+" (shorthand)")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	path := logPath
	if path == "" {
		path = config.LogFile()
	}
	if path == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()
	setupLogging()
	mines.Log = log

	app := &application{
		log:     log,
		session: session.New(log, createRand()),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
	app.run()
}
