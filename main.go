package main

import "restaurant-analytics/cmd"

func main() {
	cmd.Execute()
}
