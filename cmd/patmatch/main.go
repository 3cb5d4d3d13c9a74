package main

import (
	"patmatch/internal/app"
	"patmatch/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
