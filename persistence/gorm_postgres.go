// persistence/gorm_postgres.go
package persistence

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizopoly/gameserver/stats"
)

// GormPostgres stores player stats through GORM.
type GormPostgres struct {
	db *gorm.DB
}

// PlayerStatsModel is the stored per-name stats row.
type PlayerStatsModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;not null"`
	QuestionsAnswered int    `gorm:"default:0"`
	CorrectAnswers    int    `gorm:"default:0"`
	Accuracy          int    `gorm:"default:0"`
	TotalEarnings     int    `gorm:"default:0"`
	TotalTime         int    `gorm:"default:0"`
	AverageTime       int    `gorm:"default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewGormPostgres opens the connection, configures pooling and migrates
// the stats table.
func NewGormPostgres(host string, port int, user, password, dbname string) (*GormPostgres, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Silent,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&PlayerStatsModel{}); err != nil {
		return nil, err
	}

	return &GormPostgres{db: db}, nil
}

// SavePlayerStats upserts the full record for a name.
func (p *GormPostgres) SavePlayerStats(name string, rec stats.Record) error {
	var row PlayerStatsModel
	result := p.db.Where("name = ?", name).First(&row)

	if result.Error == gorm.ErrRecordNotFound {
		row = PlayerStatsModel{Name: name}
		applyRecord(&row, rec)
		return p.db.Create(&row).Error
	} else if result.Error != nil {
		return result.Error
	}

	applyRecord(&row, rec)
	row.UpdatedAt = time.Now()
	return p.db.Save(&row).Error
}

// LoadPlayerStats fetches the stored record for a name.
func (p *GormPostgres) LoadPlayerStats(name string) (stats.Record, error) {
	var row PlayerStatsModel
	if err := p.db.Where("name = ?", name).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return stats.Record{}, ErrRecordNotFound
		}
		return stats.Record{}, err
	}
	return stats.Record{
		QuestionsAnswered: row.QuestionsAnswered,
		CorrectAnswers:    row.CorrectAnswers,
		Accuracy:          row.Accuracy,
		TotalEarnings:     row.TotalEarnings,
		TotalTime:         row.TotalTime,
		AverageTime:       row.AverageTime,
	}, nil
}

func (p *GormPostgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func applyRecord(row *PlayerStatsModel, rec stats.Record) {
	row.QuestionsAnswered = rec.QuestionsAnswered
	row.CorrectAnswers = rec.CorrectAnswers
	row.Accuracy = rec.Accuracy
	row.TotalEarnings = rec.TotalEarnings
	row.TotalTime = rec.TotalTime
	row.AverageTime = rec.AverageTime
}
