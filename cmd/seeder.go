package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		demoEmail := "demo@mail.com"
		var exists int
		row := db.QueryRow("SELECT 1 FROM users WHERE LOWER(email) = LOWER($1)", demoEmail)
		if err := row.Scan(&exists); err == nil {
			fmt.Println("demo user already exists:", demoEmail)
		} else {
			_, err := db.Exec(
				"INSERT INTO users (user_id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, now(), now())",
				uuid.New(), demoEmail, string(hash))
			if err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demoEmail)
		}

		departments := []string{"Engineering", "Human Resources", "Finance", "Operations"}
		for _, name := range departments {
			var exists int
			row := db.QueryRow("SELECT 1 FROM departments WHERE name = $1", name)
			if err := row.Scan(&exists); err == nil {
				continue
			}
			_, err := db.Exec(
				"INSERT INTO departments (department_id, name, created_at, updated_at) VALUES ($1, $2, now(), now())",
				uuid.New(), name)
			if err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Printf("Seeded department: %s\n", name)
		}

		fmt.Println("Seeding completed")
	},
}
