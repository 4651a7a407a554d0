package main

import "github.com/navicore/fragment-bridge/cmd/fragmentbridge"

func main() {
	fragmentbridge.Execute()
}
