package main

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dahiyakapil/task-tracker/frontend/api"
	"github.com/dahiyakapil/task-tracker/frontend/ui"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Event ID: CONFIG_ERROR, Description: Failed to load .env: %v", err)
	}
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)

	baseURL := api.BaseURLFromEnv()
	log.Infof("Event ID: CLIENT_START, Description: Using tasks API at %s", baseURL)

	client := api.NewTaskClient(baseURL, nil, log)
	app := ui.NewApp(client, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := newConsole(app, bufio.NewScanner(os.Stdin), os.Stdout, time.Now)
	if err := c.run(ctx); err != nil {
		log.Fatalf("Event ID: CLIENT_FATAL_ERROR, Description: %v", err)
	}
}
