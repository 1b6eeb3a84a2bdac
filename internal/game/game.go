package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/serialize/json"
	"github.com/lonng/roundscore/internal/game/scoring"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	logger = log.WithField("component", "game")

	mu     sync.RWMutex
	engine = scoring.NewEngine()
)

func currentEngine() *scoring.Engine {
	mu.RLock()
	defer mu.RUnlock()
	return engine
}

// Setup 根据配置初始化结算引擎
func Setup() error {
	rounding, err := scoring.ParseRounding(viper.GetString("scoring.rounding"))
	if err != nil {
		return err
	}
	strict := viper.GetBool("scoring.strict_multipliers")

	mu.Lock()
	engine = scoring.NewEngine(
		scoring.WithRounding(rounding),
		scoring.WithStrictMultipliers(strict),
		scoring.WithLogger(log.WithField("component", "scoring")))
	mu.Unlock()

	logger.Infof("当前结算配置: 取整方式=%s, 严格番型=%t", rounding, strict)
	return nil
}

// Startup 初始化游戏服务器
func Startup() {
	heartbeat := viper.GetInt("core.heartbeat")
	if heartbeat < 5 {
		heartbeat = 5
	}

	logger.Infof("当前心跳时间间隔: %d秒", heartbeat)
	logger.Info("game service starup")

	// register game handler
	comps := &component.Components{}
	comps.Register(NewRoundManager())

	addr := fmt.Sprintf(":%d", viper.GetInt("game-server.port"))
	nano.Listen(addr,
		nano.WithHeartbeatInterval(time.Duration(heartbeat)*time.Second),
		nano.WithLogger(log.WithField("component", "nano")),
		nano.WithSerializer(json.NewSerializer()),
		nano.WithComponents(comps),
	)
}
