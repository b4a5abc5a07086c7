package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"minesweeper/internal/session"
)

type application struct {
	log     *logrus.Logger
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
}

func (app *application) printf(format string, args ...any) {
	fmt.Fprintf(app.out, format, args...)
}

func (app *application) readLine() (string, bool) {
	if !app.in.Scan() {
		return "", false
	}
	return app.in.Text(), true
}

func (app *application) run() {
	app.printf("Mines!\n")
	app.printMenu()
	for {
		app.printf("> ")
		line, ok := app.readLine()
		if !ok {
			return
		}
		cmd, err := parseCommand(line)
		if err != nil {
			app.printf("%v\n", err)
			continue
		}

		flow, err := app.session.Apply(cmd)
		if err != nil {
			app.log.WithError(err).Debug("command rejected")
			app.printf("%v\n", err)
			continue
		}

		switch flow.Action {
		case session.QuitRequested:
			return
		case session.ScoresRequested:
			app.printf("Scores...\n")
			continue
		case session.GameStarted:
			app.printf("%d x %d, %d bombs\n",
				flow.Params.Rows, flow.Params.Cols, flow.Params.BombCount)
		}

		if app.session.Grid() == nil {
			app.printMenu()
			continue
		}

		app.printf("%s", app.session.Render())
		switch app.session.Status() {
		case session.Lost:
			app.printf("!!!! BOOOM !!!!\n")
			app.printMenu()
		case session.Won:
			app.printf("Board cleared!\n")
			app.printMenu()
		}
	}
}

func (app *application) printMenu() {
	app.printf("n b|i|e  new game (Beginner 9x9/10, Intermediate 16x16/40, Expert 16x30/99)\n")
	app.printf("n rows=R&cols=C&bombs=B  new custom game\n")
	app.printf("o R C    reveal cell   f R C  toggle flag\n")
	app.printf("s        top scores    q      quit\n")
}
