package main

import (
	"flag"

	"focusflow/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default ~/.focusflow/config.yaml)")
	ui := flag.String("ui", "", "front end: gui or tui (overrides config)")
	flag.Parse()

	app.InitDefaultLogger()
	app.MustReadConfig(*configPath, *ui)
	app.MustInitApplicationLogger()
	defer app.CloseLogFile()

	app.MustRunUI()
}
