package main

import "github.com/nrad-K/hh-vacancies/cmd"

func main() {
	cmd.Execute()
}
