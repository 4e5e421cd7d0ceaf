// persistence/postgres.go
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/quizopoly/gameserver/stats"
)

// Postgres is the plain database/sql variant of the stats store, for
// deployments that prefer raw SQL over GORM.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(host string, port int, user, password, dbname string) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &Postgres{db: db}, nil
}

func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS player_stats (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            questions_answered INT NOT NULL DEFAULT 0,
            correct_answers INT NOT NULL DEFAULT 0,
            accuracy INT NOT NULL DEFAULT 0,
            total_earnings INT NOT NULL DEFAULT 0,
            total_time INT NOT NULL DEFAULT 0,
            average_time INT NOT NULL DEFAULT 0,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`)
	return err
}

func (p *Postgres) SavePlayerStats(name string, rec stats.Record) error {
	_, err := p.db.Exec(`
        INSERT INTO player_stats
            (name, questions_answered, correct_answers, accuracy, total_earnings, total_time, average_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (name) DO UPDATE SET
            questions_answered = EXCLUDED.questions_answered,
            correct_answers = EXCLUDED.correct_answers,
            accuracy = EXCLUDED.accuracy,
            total_earnings = EXCLUDED.total_earnings,
            total_time = EXCLUDED.total_time,
            average_time = EXCLUDED.average_time,
            updated_at = CURRENT_TIMESTAMP`,
		name, rec.QuestionsAnswered, rec.CorrectAnswers, rec.Accuracy,
		rec.TotalEarnings, rec.TotalTime, rec.AverageTime)
	return err
}

func (p *Postgres) LoadPlayerStats(name string) (stats.Record, error) {
	var rec stats.Record
	err := p.db.QueryRow(`
        SELECT questions_answered, correct_answers, accuracy, total_earnings, total_time, average_time
        FROM player_stats WHERE name = $1`, name).
		Scan(&rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.Accuracy,
			&rec.TotalEarnings, &rec.TotalTime, &rec.AverageTime)
	if err == sql.ErrNoRows {
		return stats.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return stats.Record{}, err
	}
	return rec, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
