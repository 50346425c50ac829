package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"

	"hostal/internal/database"
	"hostal/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hostal.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("cambiar123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	users := []domain.User{
		{FullName: "Administrador", Username: "admin", PasswordHash: string(hash), Role: domain.RoleAdmin, IsActive: true},
		{FullName: "Cajero Turno Día", Username: "cajero1", PasswordHash: string(hash), Role: domain.RoleCashier, IsActive: true},
		{FullName: "Cajero Turno Noche", Username: "cajero2", PasswordHash: string(hash), Role: domain.RoleCashier, IsActive: true},
	}
	for i := range users {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users[i]).Error; err != nil {
			log.Fatal("seeding users: ", err)
		}
	}

	rooms := []domain.Room{
		{RoomNumber: "101", RoomType: "simple", Status: domain.RoomAvailable, BasePrice: dec("80"), ShortStay3hPrice: dec("30"), ShortStay6hPrice: dec("50"), MaxOccupancy: 1},
		{RoomNumber: "102", RoomType: "simple", Status: domain.RoomAvailable, BasePrice: dec("80"), ShortStay3hPrice: dec("30"), ShortStay6hPrice: dec("50"), MaxOccupancy: 1},
		{RoomNumber: "201", RoomType: "matrimonial", Status: domain.RoomAvailable, BasePrice: dec("120"), ShortStay3hPrice: dec("45"), ShortStay6hPrice: dec("70"), MaxOccupancy: 2},
		{RoomNumber: "202", RoomType: "matrimonial", Status: domain.RoomAvailable, BasePrice: dec("120"), ShortStay3hPrice: dec("45"), ShortStay6hPrice: dec("70"), MaxOccupancy: 2},
		{RoomNumber: "301", RoomType: "triple", Status: domain.RoomAvailable, BasePrice: dec("160"), ShortStay3hPrice: dec("60"), ShortStay6hPrice: dec("90"), MaxOccupancy: 3},
	}
	for i := range rooms {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rooms[i]).Error; err != nil {
			log.Fatal("seeding rooms: ", err)
		}
	}

	products := []domain.Product{
		{Name: "Agua 600ml", Category: "bebidas", UnitPrice: dec("5"), TaxRate: dec("13"), TrackInventory: true, StockQuantity: 48, IsActive: true},
		{Name: "Gaseosa 500ml", Category: "bebidas", UnitPrice: dec("8"), TaxRate: dec("13"), TrackInventory: true, StockQuantity: 36, IsActive: true},
		{Name: "Cerveza", Category: "bebidas", UnitPrice: dec("15"), TaxRate: dec("13"), TrackInventory: true, StockQuantity: 24, IsActive: true},
		{Name: "Jabón extra", Category: "aseo", UnitPrice: dec("3"), IsActive: true},
		{Name: "Toalla extra", Category: "aseo", UnitPrice: dec("10"), IsActive: true},
		{Name: "Lavandería", Category: "servicios", UnitPrice: dec("20"), IsActive: true},
	}
	for i := range products {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products[i]).Error; err != nil {
			log.Fatal("seeding products: ", err)
		}
	}

	log.Printf("seeded %d users, %d rooms, %d products", len(users), len(rooms), len(products))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
