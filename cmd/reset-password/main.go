package main

import (
	"flag"
	"log"
	"os"

	"swiftpos/internal/repository"
	"swiftpos/internal/store"
	"swiftpos/pkg/password"

	"github.com/joho/godotenv"
)

// Operator tool: reset a cashier's password directly against the store
// file, for when nobody can reach the admin panel.
func main() {
	username := flag.String("username", "", "cashier username")
	newPassword := flag.String("password", "", "new password")
	flag.Parse()

	if *username == "" || *newPassword == "" {
		log.Fatal("Usage: reset-password -username <username> -password <new password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	dbPath := os.Getenv("POS_DB_PATH")
	if dbPath == "" {
		dbPath = "swiftpos.db"
	}
	kv, err := store.OpenBolt(dbPath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", dbPath, err)
	}
	defer kv.Close()

	cashiers := repository.NewCashierRepo(kv)
	cashier, err := cashiers.FindByUsername(*username)
	if err != nil {
		log.Fatalf("Failed to read cashiers: %v", err)
	}
	if cashier == nil {
		log.Fatalf("Cashier %q not found", *username)
	}

	scheme := password.FromName(os.Getenv("PASSWORD_SCHEME"))
	hashed, err := scheme.Hash(*newPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	cashier.Password = hashed
	if err := cashiers.Update(cashier); err != nil {
		log.Fatalf("Failed to update cashier: %v", err)
	}

	log.Printf("Password for %q has been reset", *username)
}
