package main

import (
	"fmt"
	"os"

	"github.com/ryansb/arsd/cmd/root"
)

func main() {
	app, err := root.NewApp()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer app.Store.Close()

	if err := root.NewRootCmd(app).Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
