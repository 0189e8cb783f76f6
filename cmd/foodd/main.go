package main

import (
	"log"

	"github.com/NVIDIA/food-service/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
