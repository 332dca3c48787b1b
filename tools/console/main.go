package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/asdine/storm/v3"
	"github.com/chzyer/readline"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/pkg/stormcodec"
	"github.com/mdouchement/todolist/pkg/stormsql"
	"github.com/mdouchement/todolist/pkg/structs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	bolt "go.etcd.io/bbolt"
)

// go run tools/console/main.go todolist.db " SELECT count(*) FROM todos WHERE Done = false AND CreatedAt > '2019-02-16 20:52:55';  "

var codecName string

func main() {
	c := &cobra.Command{
		Use:   "console DATABASE [QUERY]",
		Short: "SQL console for todolist database",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			codec, err := stormcodec.ByName(codecName)
			if err != nil {
				return err
			}

			//
			//
			fmt.Println("Opening", args[0])
			db, err := storm.Open(args[0], storm.Codec(codec), storm.BoltOptions(0600, &bolt.Options{ReadOnly: true}))
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			if len(args) == 2 {
				return execute(os.Stdout, db, args[1])
			}
			return repl(db)
		},
	}
	c.Flags().StringVar(&codecName, "codec", stormcodec.Default, "Database codec ("+strings.Join(stormcodec.Names(), ", ")+")")

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func repl(db storm.Node) error {
	rl, err := readline.New("todolist> ")
	if err != nil {
		return errors.Wrap(err, "could not open prompt")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not read query")
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit", `\q`:
			return nil
		}

		if err = execute(rl.Stdout(), db, line); err != nil {
			fmt.Fprintln(rl.Stderr(), "Error:", err)
		}
	}
}

func execute(w io.Writer, db storm.Node, sql string) error {
	sc, err := stormsql.ParseSelect(sql)
	if err != nil {
		return err
	}

	if sc.Tablename != "todos" {
		return errors.Errorf("unknown tablename: %s", sc.Tablename)
	}

	query := sc.Query(db)

	// Execute

	if sc.Count {
		return count(w, query)
	}

	return list(w, sc, query)
}

func count(w io.Writer, query storm.Query) error {
	n, err := query.Count(&model.Item{})
	if err != nil {
		return errors.Wrap(err, "could not perform query")
	}

	fmt.Fprintln(w, "Count:", n)

	return nil
}

func list(w io.Writer, sc *stormsql.SelectClause, query storm.Query) error {
	var items []*model.Item
	err := query.Find(&items)
	if err == storm.ErrNotFound {
		fmt.Fprintln(w, "[]")
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "could not perform query")
	}

	if len(sc.SelectedFields) == 0 {
		return jsondump(w, items)
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row, err := structs.Project(item, sc.SelectedFields...)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return jsondump(w, rows)
}

func jsondump(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize result")
	}
	fmt.Fprintln(w, string(d))
	return nil
}
