package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/logan-bobo/spark-kv/core"
	"github.com/logan-bobo/spark-kv/internal/command"
)

const usageText = `Usage:
  spark-kv [-dir <path>] set <key> <value>
  spark-kv [-dir <path>] get <key>
  spark-kv [-dir <path>] rm <key>`

func main() {
	dir := flag.String("dir", core.DefaultDirectoryPath, "directory holding the store")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usageText)
	}
	flag.Parse()

	cmd, err := command.FromArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}

	switch cmd.Name {
	case "set", "get", "rm":
	default:
		// Shell-only commands such as keys or count are not served here.
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}

	os.Exit(run(cmd, *dir))
}

func run(cmd command.Command, dir string) int {
	store, err := core.Open(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer store.Close()

	switch cmd.Name {
	case "set":
		if err := store.Set(cmd.Key, cmd.Val); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

	case "get":
		value, ok, err := store.Get(cmd.Key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if !ok {
			fmt.Println("Key not found")
			return 0
		}
		fmt.Println(value)

	case "rm":
		if err := store.Remove(cmd.Key); err != nil {
			if errors.Is(err, core.ErrKeyNotFound) {
				fmt.Fprintln(os.Stderr, "Key not found")
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return 1
		}
	}

	return 0
}
