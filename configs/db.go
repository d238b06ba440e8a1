package configs

import (
	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. Callers own the
// lifecycle and pass the handle down; there is no package-global connection.
// TranslateError is on so unique-index violations come back as
// gorm.ErrDuplicatedKey.
func Connect(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.ReviewItem{},
		&entity.Blog{}, &entity.BlogComment{}, &entity.BlogLike{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
