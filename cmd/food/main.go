package main

import "github.com/NVIDIA/food-service/pkg/cli"

func main() {
	cli.Execute()
}
