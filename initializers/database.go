package initializers

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectToDB() {
	dsn := withClientFoundRows(os.Getenv("DB_URL"))
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	DB = db
}

// withClientFoundRows makes the MySQL driver report matched rows instead of
// changed rows. The cart handlers use RowsAffected to tell an absent row
// from an existing one, and without this flag a no-op UPDATE (same quantity
// again) would count zero rows and look like a missing row.
func withClientFoundRows(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "clientFoundRows") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&clientFoundRows=true"
	}
	return dsn + "?clientFoundRows=true"
}
