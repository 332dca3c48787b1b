package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/mdouchement/todolist/internal/config"
	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/logger"
	"github.com/mdouchement/todolist/internal/server"
	"github.com/mdouchement/todolist/internal/server/service"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "todolist",
		Short:   "Todo list server",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	c.PersistentFlags().StringVarP(&cfg, "config", "c", "", "Configuration file")

	c.AddCommand(initCmd)
	c.AddCommand(reindexCmd)
	c.AddCommand(serverCmd)
	c.AddCommand(dumpCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func load() (*config.Config, *logrus.Logger, error) {
	konf, err := config.Load(cfg)
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.New(os.Stderr, konf.Log)
	return konf, l, err
}

func todos(konf *config.Config, db database.Client, l logrus.FieldLogger) *service.Todo {
	return service.NewTodo(db, service.Options{
		DefaultColor: konf.DefaultColor,
		BatchSize:    konf.Reorder.BatchSize,
		Policy:       konf.ReorderPolicy(),
		Logger:       l,
	})
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, _, err := load()
			if err != nil {
				return err
			}

			return database.StormInit(konf.Database(), konf.DatabaseOptions())
		},
	}

	//
	reindexCmd = &coral.Command{
		Use:   "reindex",
		Short: "Reindex the database and repair item positions",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, l, err := load()
			if err != nil {
				return err
			}

			if err = database.StormReIndex(konf.Database(), konf.DatabaseOptions()); err != nil {
				return err
			}

			db, err := database.StormOpen(konf.Database(), konf.DatabaseOptions())
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			n, err := todos(konf, db, l).Repair()
			if err != nil {
				return err
			}
			l.WithField("moved", n).Info("Positions repaired")
			return nil
		},
	}

	//
	dumpCmd = &coral.Command{
		Use:   "dump",
		Short: "Print all the items of the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, l, err := load()
			if err != nil {
				return err
			}

			db, err := database.StormOpen(konf.Database(), konf.DatabaseOptions())
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			items, err := todos(konf, db, l).List()
			if err != nil {
				return err
			}

			fmt.Println(logger.Dump(items))
			return nil
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, l, err := load()
			if err != nil {
				return err
			}
			l.Debug(logger.Dump(konf))

			db, err := database.StormOpen(konf.Database(), konf.DatabaseOptions())
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			engine := server.EchoEngine(server.IOC{
				Version:       version,
				Database:      db,
				Logger:        l,
				DefaultColor:  konf.DefaultColor,
				BatchSize:     konf.Reorder.BatchSize,
				ReorderPolicy: konf.ReorderPolicy(),
			})
			engine.Server.ReadTimeout = konf.Server.ReadTimeout
			engine.Server.WriteTimeout = konf.Server.WriteTimeout
			server.PrintRoutes(os.Stdout, engine)

			address := konf.Address
			message := "could not run server"
			l.Infof("Server listening on %s", address)
			parts := strings.Split(address, ":")
			if len(parts) == 2 && parts[0] == "unix" {
				socketFile := parts[1]
				if _, err := os.Stat(socketFile); err == nil {
					l.Infof("Removing existing %s", socketFile)
					os.Remove(socketFile)
				}
				defer os.Remove(socketFile)
				listener, err := net.Listen(parts[0], socketFile)
				if err != nil {
					return err
				}
				return errors.Wrap(ignoreClosed(engine.Server.Serve(listener)), message)
			}
			return errors.Wrap(ignoreClosed(engine.Start(address)), message)
		},
	}
)

func ignoreClosed(err error) error {
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
