// Command hash-password prints the bcrypt hash to store in ADMIN_PASSWORD_HASH.
//
//	echo -n 's3cret' | hash-password
//	hash-password -cost 12 's3cret'
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	password := flag.Arg(0)
	if password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("❌  could not read password from stdin: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := hashPassword(password, *cost)
	if err != nil {
		log.Fatalf("❌  %v", err)
	}
	fmt.Println(hash)
}

func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
