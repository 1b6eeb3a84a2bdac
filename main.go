package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/lonng/roundscore/internal/game"
	"github.com/lonng/roundscore/internal/hooks"
	"github.com/lonng/roundscore/internal/web"
	"github.com/lonng/roundscore/protocol"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "roundscore"
	app.Author = "MaJong"
	app.Version = "0.1.0"
	app.Copyright = "majong team reserved"
	app.Usage = "mahjong round settlement server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
	}

	app.Before = setup
	app.Action = serve
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the http and game servers",
			Action: serve,
		},
		{
			Name:  "settle",
			Usage: "settle a single round and print the scores",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "winner, w", Usage: "winner seat: east, south, west, north"},
				cli.StringFlag{Name: "dealer, d", Usage: "dealer seat"},
				cli.StringFlag{Name: "source, s", Value: "none", Usage: "discarder seat, `none` for self-drawn"},
				cli.StringSliceFlag{Name: "multiplier, m", Usage: "declared multiplier, repeatable"},
				cli.IntFlag{Name: "revealed", Usage: "revealed meld count"},
				cli.IntFlag{Name: "concealed", Usage: "concealed meld count"},
			},
			Action: settle,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("读取配置文件失败, 使用默认配置: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
	}
	if viper.GetBool("core.log_source") {
		log.AddHook(hooks.NewHook())
	}

	return game.Setup()
}

func serve(c *cli.Context) error {
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() { defer wg.Done(); game.Startup() }() // 开启游戏服
	go func() { defer wg.Done(); web.Startup() }()  // 开启web服务器

	wg.Wait()
	return nil
}

func settle(c *cli.Context) error {
	resp, err := game.Settle(&protocol.SettleRequest{
		Winner:         c.String("winner"),
		Dealer:         c.String("dealer"),
		TileSource:     c.String("source"),
		Multipliers:    c.StringSlice("multiplier"),
		RevealedMelds:  c.Int("revealed"),
		ConcealedMelds: c.Int("concealed"),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Printf("%s: base=%d factor=%d final=%d\n", resp.WinCase, resp.BaseScore, resp.Factor, resp.FinalScore)
	for _, s := range resp.Scores {
		fmt.Printf("%s: %d\n", s.Label, s.Score)
	}
	return nil
}
