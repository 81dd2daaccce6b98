package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oualidazemray/Bellavista1.0-sub002/config"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
)

// Seeds a verified admin and agent account, a handful of admin alerts, and
// one pending reservation so the backoffice screens have data locally.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := seedUser(db, "admin@bellavista.test", "Bella Admin", "ADMIN")
	seedUser(db, "agent@bellavista.test", "Bella Agent", "AGENT")
	clientID := seedUser(db, "client@bellavista.test", "Demo Client", "CLIENT")
	fmt.Printf("seeded users: admin=%s client=%s (password: password123)\n", adminID, clientID)

	for i, msg := range []string{
		"New reservation awaiting confirmation",
		"Room 204 reported a maintenance issue",
		"Nightly audit completed",
	} {
		if _, err := db.Exec(`
			INSERT INTO alerts (type, message, read, for_admin)
			VALUES ($1, $2, false, true)
		`, "SYSTEM", fmt.Sprintf("%s (#%d)", msg, i+1)); err != nil {
			log.Fatalf("failed to seed alert: %v", err)
		}
	}

	var roomID string
	if err := db.QueryRow(`
		INSERT INTO rooms (number, type, price_per_night)
		VALUES ('101', 'DOUBLE', 129.00)
		ON CONFLICT (number) DO UPDATE SET type = EXCLUDED.type
		RETURNING id
	`).Scan(&roomID); err != nil {
		log.Fatalf("failed to seed room: %v", err)
	}

	checkIn := time.Now().AddDate(0, 0, 7)
	var resID string
	if err := db.QueryRow(`
		INSERT INTO reservations (status, client_id, check_in, check_out, guests, total_price)
		VALUES ('PENDING', $1, $2, $3, 2, 258.00)
		RETURNING id
	`, clientID, checkIn, checkIn.AddDate(0, 0, 2)).Scan(&resID); err != nil {
		log.Fatalf("failed to seed reservation: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO reservation_rooms (reservation_id, room_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, resID, roomID); err != nil {
		log.Fatalf("failed to link reservation room: %v", err)
	}
	fmt.Printf("seeded pending reservation %s for room %s\n", resID, roomID)
}

func seedUser(db *sql.DB, email, name, role string) string {
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, phone, role, is_verified)
		VALUES ($1, $2, $3, '', $4, true)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}
