package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/engine"
	"github.com/FreddyWordingham/GOAP/internal/planner"
	"github.com/FreddyWordingham/GOAP/internal/scenario"
	"github.com/FreddyWordingham/GOAP/internal/server"
	"github.com/FreddyWordingham/GOAP/internal/tui"
	"github.com/FreddyWordingham/GOAP/internal/version"
	"github.com/FreddyWordingham/GOAP/pkg/logger"

	"github.com/sirupsen/logrus"
)

// defaultServerExpansions - потолок раскрытий на один запрос в режиме сервера
const defaultServerExpansions = 2_000_000

const shutdownTimeout = 10 * time.Second

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		scenarioPath  string
		maxExpansions int
		useTUI        bool
		serve         bool
		dump          bool
		port          string
	)
	flag.StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario (empty for the built-in demo)")
	flag.IntVar(&maxExpansions, "max-expansions", -1, "Node expansion limit (0 = unlimited, -1 = from scenario / server default)")
	flag.BoolVar(&useTUI, "tui", false, "Browse the plan interactively")
	flag.BoolVar(&serve, "serve", false, "Run the HTTP/WebSocket planning server")
	flag.BoolVar(&dump, "dump", false, "Print the effective scenario as YAML and exit")
	flag.StringVar(&port, "port", "", "Server port (default $GOAP_PORT or 8080)")
	flag.Parse()

	logger.Log.Debug(version.String())

	// РЕЖИМ СЕРВЕРА
	if serve {
		if port == "" {
			port = os.Getenv("GOAP_PORT")
		}
		if port == "" {
			port = "8080"
		}
		limit := defaultServerExpansions
		if maxExpansions >= 0 {
			limit = maxExpansions
		}

		logger.Log.Info(version.String())

		// Graceful Shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		srv := server.New(server.NewPlanService(limit), port)
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.Fatal("Server start error:", err)
			}
		}()

		<-stop
		logger.Log.Info("Shutting down...")

		// Даем текущим запросам /plan доработать
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.WithError(err).Warn("Server shutdown incomplete")
		}

		logger.Log.Info("Done.")
		return
	}

	sc := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			logger.Log.Fatal("Failed to load scenario: ", err)
		}
		sc = loaded
	}
	if maxExpansions >= 0 {
		sc.Planner.MaxExpansions = maxExpansions
	}

	if dump {
		data, err := sc.Marshal()
		if err != nil {
			logger.Log.Fatal("Failed to encode scenario: ", err)
		}
		os.Stdout.Write(data)
		return
	}

	cfg, err := sc.PlannerConfig()
	if err != nil {
		logger.Log.Fatal("Invalid scenario: ", err)
	}

	// 2. Планирование
	res := planner.New(cfg).Solve(sc.Initial, sc.Goal)
	trace, err := engine.Execute(sc.Initial, res.Actions)
	if err != nil {
		logger.Log.Fatal("Planner produced an invalid plan: ", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"status":   res.Status.String(),
		"length":   len(res.Actions),
		"expanded": res.Expanded,
	}).Info("Planning finished")

	if useTUI {
		if err := tui.Run(res, trace, sc.Goal); err != nil {
			logger.Log.Fatal("TUI error: ", err)
		}
		return
	}

	printPlan(os.Stdout, sc.Initial, sc.Goal, res.Actions)

	if !res.Status.Succeeded() {
		os.Exit(2)
	}
}

// printPlan печатает план в формате "<index> > <label>" по строке на действие
func printPlan(w io.Writer, initial, goal domain.WorldState, plan []domain.Action) {
	fmt.Fprintf(w, "INIT: %s\n", initial)
	fmt.Fprintf(w, "GOAL: %s\n", goal)
	fmt.Fprintln(w, "PLAN:")
	for i, action := range plan {
		fmt.Fprintf(w, "%d > %s\n", i, action)
	}
}
