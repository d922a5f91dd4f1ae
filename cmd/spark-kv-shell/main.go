package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logan-bobo/spark-kv/core"
	"github.com/logan-bobo/spark-kv/internal/command"
)

const helpText = `
Available Commands:

SET <key> <value>
  Store a value for the given key.
  Overwrites the value if the key already exists.
  Response: ok

GET <key>
  Retrieve the value associated with the key.
  Response: value | nil

RM <key>
  Remove the key and its value.
  Response: ok | Key not found

KEYS
  List all stored keys in sorted order.
  Response: list of keys | nil

COUNT
  Return the total number of keys stored.
  Response: integer

HELP
  Show this help message.

EXIT
  Close the store and quit.
`

func main() {
	dir := flag.String("dir", core.DefaultDirectoryPath, "directory holding the store")
	flag.Parse()

	store, err := core.Open(*dir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	fmt.Printf("Opened store in %v (%d keys)\n", *dir, store.Len())
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		cmd, err := command.Parse(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		if cmd.Name == "exit" {
			return
		}

		fmt.Println(execute(store, cmd))
	}
}

func execute(store *core.Store, cmd command.Command) string {
	switch cmd.Name {
	case "set":
		if err := store.Set(cmd.Key, cmd.Val); err != nil {
			return "error: " + err.Error()
		}
		return "ok"

	case "get":
		value, ok, err := store.Get(cmd.Key)
		if err != nil {
			return "error: " + err.Error()
		}
		if !ok {
			return "nil"
		}
		return value

	case "rm":
		if err := store.Remove(cmd.Key); err != nil {
			if errors.Is(err, core.ErrKeyNotFound) {
				return "Key not found"
			}
			return "error: " + err.Error()
		}
		return "ok"

	case "keys":
		keys := store.Keys()
		if len(keys) == 0 {
			return "nil"
		}
		return strings.Join(keys, "\n")

	case "count":
		return strconv.Itoa(store.Len())

	case "help":
		return strings.TrimSpace(helpText)
	}

	return "Invalid Command"
}
