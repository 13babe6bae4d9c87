// Command hash-generator prints bcrypt digests for seed data and fixtures.
//
//	hash-generator password123 hunter22
//
// Without arguments it hashes a fixed set of sample passwords.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

var samplePasswords = []string{
	"password123",
	"test@#$%^&*()",
	"тест123",
}

func main() {
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		passwords = samplePasswords
	}

	hasher := auth.NewBcryptHasher()
	failed := false
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating hash for %q: %v\n", password, err)
			failed = true
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}

	if failed {
		os.Exit(1)
	}
}
