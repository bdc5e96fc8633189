package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/evanofslack/pyminion-sub000/internal/bots"
	"github.com/evanofslack/pyminion-sub000/internal/console"
	"github.com/evanofslack/pyminion-sub000/internal/game"
	gamelog "github.com/evanofslack/pyminion-sub000/internal/log"
)

func main() {
	fs := flag.NewFlagSet("minion", flag.ExitOnError)
	games := fs.Int("games", 1, "number of games to simulate")
	seed := fs.Int64("seed", 0, "RNG seed (0 for random)")
	players := fs.String("players", "bigmoney,bigmoney", "comma-separated player kinds (bigmoney, human)")
	kingdomName := fs.String("kingdom", "", "named kingdom selection from the kingdoms file")
	kingdomFile := fs.String("kingdoms", "", "path to a YAML kingdoms file")
	configFile := fs.String("config", "", "path to a config file (overrides flags)")
	quiet := fs.Bool("quiet", false, "suppress the per-game event log")
	fs.Parse(os.Args[1:])

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatal("read config", zap.String("path", *configFile), zap.Error(err))
		}
		if viper.IsSet("games") {
			*games = viper.GetInt("games")
		}
		if viper.IsSet("seed") {
			*seed = viper.GetInt64("seed")
		}
		if viper.IsSet("players") {
			*players = strings.Join(viper.GetStringSlice("players"), ",")
		}
		if viper.IsSet("kingdom") {
			*kingdomName = viper.GetString("kingdom")
		}
		if viper.IsSet("kingdoms") {
			*kingdomFile = viper.GetString("kingdoms")
		}
	}

	var kingdom []string
	if *kingdomFile != "" && *kingdomName != "" {
		kingdom, err = game.KingdomByName(*kingdomFile, *kingdomName)
		if err != nil {
			logger.Fatal("load kingdom", zap.Error(err))
		}
	}

	wins := make(map[string]int)
	for i := 0; i < *games; i++ {
		gameSeed := *seed
		if gameSeed != 0 {
			gameSeed += int64(i)
		}
		result, err := runGame(buildPlayers(*players), kingdom, gameSeed, *quiet)
		if err != nil {
			logger.Fatal("game failed", zap.Int("game", i+1), zap.Error(err))
		}
		for _, w := range result.Winners {
			wins[w]++
		}
		logger.Info("game finished",
			zap.String("id", result.GameID),
			zap.Int("game", i+1),
			zap.Strings("winners", result.Winners),
			zap.Int("turns", result.Turns),
		)
	}

	fmt.Println()
	for name, n := range wins {
		fmt.Printf("%-12s %d wins\n", name, n)
	}
}

func buildPlayers(spec string) []*game.Player {
	var players []*game.Player
	for i, kind := range strings.Split(spec, ",") {
		name := fmt.Sprintf("%s-%d", strings.TrimSpace(kind), i+1)
		switch strings.TrimSpace(kind) {
		case "human":
			players = append(players, game.NewPlayer(name, console.NewHuman(os.Stdin, os.Stdout)))
		default:
			players = append(players, game.NewPlayer(name, bots.NewBigMoney()))
		}
	}
	return players
}

func runGame(players []*game.Player, kingdom []string, seed int64, quiet bool) (*game.Result, error) {
	var eventLog gamelog.EventLogger
	if quiet {
		eventLog = gamelog.NewMemoryLogger()
	} else {
		eventLog = gamelog.NewTextLogger(os.Stdout)
	}

	g, err := game.NewGame(game.Config{
		Expansions: []game.Expansion{game.BaseSet, game.IntrigueSet, game.SeasideSet},
		Kingdom:    kingdom,
		Seed:       seed,
		Logger:     eventLog,
	}, players...)
	if err != nil {
		return nil, err
	}
	return g.Play(context.Background())
}
