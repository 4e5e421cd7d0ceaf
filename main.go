package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quizopoly/gameserver/config"
	"github.com/quizopoly/gameserver/game"
	"github.com/quizopoly/gameserver/logger"
	"github.com/quizopoly/gameserver/monitor"
	"github.com/quizopoly/gameserver/persistence"
	"github.com/quizopoly/gameserver/question"
	"github.com/quizopoly/gameserver/room"
	"github.com/quizopoly/gameserver/server"
	"github.com/quizopoly/gameserver/stats"
	"github.com/quizopoly/gameserver/timer"
)

func main() {
	cobra.CheckErr(newCmd().Execute())
}

func newCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "quizopoly",
		Short:         "Multiplayer trivia board game server",
		Args:          cobra.ExactArgs(0),
		Version:       server.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", ".", "directory containing config.yaml")
	fs.VisitAll(func(f *pflag.Flag) {
		if v, ok := os.LookupEnv("QUIZOPOLY_" + envName(f.Name)); ok && !f.Changed {
			_ = fs.Set(f.Name, v)
		}
	})

	return cmd
}

func envName(flag string) string {
	out := make([]byte, len(flag))
	for i := 0; i < len(flag); i++ {
		c := flag[i]
		if c == '-' {
			c = '_'
		} else if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func run(configPath string) error {
	logger.Init()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	gameCfg := game.Config{
		MaxPlayers:    cfg.Game.MaxPlayers,
		StartingMoney: cfg.Game.StartingMoney,
		PassGoBonus:   cfg.Game.PassGoBonus,
		AnswerReward:  cfg.Game.AnswerReward,
		ResultDelay:   cfg.Game.ResultDelay,
	}

	tracker := stats.NewTracker(gameCfg.AnswerReward)
	if cfg.Database.Enabled {
		db, err := openDatabase(cfg)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		tracker.SetSink(db)
		logger.Log.Info("Stats persistence enabled.")
	}

	timers := timer.NewManager()
	defer timers.Stop()

	manager := room.NewManager(gameCfg, question.Default(), tracker, timers)
	mon := monitor.NewMonitor("quizopoly")
	mon.StartServer(cfg.Server.MetricsAddress)

	gameServer := server.NewGameServer(cfg.Server.HTTPAddress, cfg.Server.RPCAddress, manager, tracker, mon)

	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	return gameServer.Start()
}

func openDatabase(cfg *config.Config) (persistence.Database, error) {
	pg := cfg.Database.Postgres
	if cfg.Database.Driver == "postgres" {
		return persistence.NewPostgres(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	}
	return persistence.NewGormPostgres(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
}
