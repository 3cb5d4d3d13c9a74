package main

import (
	"patmatch/internal/appshell"
	"patmatch/internal/restrictapp"
)

func main() { appshell.Main(restrictapp.RunContext) }
