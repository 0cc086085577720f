package main

import (
	"fmt"
	"os"

	"github.com/andrasnagy-data/bloglist/internal/shared/password"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash/main.go <password>")
		os.Exit(1)
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Hash: %s\n", hash)
	fmt.Printf("\nUse as passwordHash when seeding a user document or row.\n")
}
