package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventzen/internal/database"
	"eventzen/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "eventzen.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Venue{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.Attendee{},
		&domain.Vendor{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM attendees")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@eventzen.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.DefaultCost)
	user := domain.User{
		Email:        "demo@eventzen.local",
		PasswordHash: string(userHash),
		Role:         domain.RoleUser,
		Name:         "Demo User",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating venues...")
	venues := []domain.Venue{
		{Name: "Grand Hall", Address: "12 Main St", City: "Springfield", Amenities: "stage,projector,catering", Price: 150.00, Capacity: 300},
		{Name: "Riverside Loft", Address: "3 Quay Rd", City: "Springfield", Amenities: "wifi,kitchen", Price: 85.50, Capacity: 80},
		{Name: "Garden Pavilion", Address: "77 Park Ave", City: "Shelbyville", Amenities: "outdoor,parking", Price: 120.00, Capacity: 150},
	}
	for i := range venues {
		if err := db.Create(&venues[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating events...")
	events := []domain.Event{
		{Name: "Jazz Evening", Description: "Live trio, standards and originals", Location: "Grand Hall", Category: "music", Date: time.Now().AddDate(0, 1, 0), Price: 150.00, Capacity: 200},
		{Name: "Tech Meetup", Description: "Talks on distributed systems", Location: "Riverside Loft", Category: "tech", Date: time.Now().AddDate(0, 0, 14), Price: 25.00, Capacity: 60},
		{Name: "Food Festival", Description: "Local vendors and tastings", Location: "Garden Pavilion", Category: "food", Date: time.Now().AddDate(0, 2, 0), Price: 40.00, Capacity: 500},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating vendors...")
	vendors := []domain.Vendor{
		{Name: "Bright Catering", Email: "hello@brightcatering.test", ServiceType: "catering", Phone: "+1-555-0101"},
		{Name: "SoundWorks", Email: "booking@soundworks.test", ServiceType: "audio", Phone: "+1-555-0102"},
	}
	for i := range vendors {
		if err := db.Create(&vendors[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Printf("admin login: admin@eventzen.local / admin123")
	log.Printf("demo login:  demo@eventzen.local / user1234")
}
