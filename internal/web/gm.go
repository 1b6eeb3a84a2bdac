package web

import (
	"context"
	"net"
	"net/http"

	"github.com/lonng/roundscore/internal/game"
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// 只允许本机访问
func authFilter(ctx context.Context, r *http.Request) (context.Context, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return ctx, errutil.ErrPermissionDenied
	}

	if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
		return ctx, errutil.ErrPermissionDenied
	}

	return ctx, nil
}

func reloadHandler() (*protocol.StringMessage, error) {
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errutil.ErrServerInternal, err.Error())
	}
	if err := game.Setup(); err != nil {
		return nil, err
	}
	logger.Info("结算配置已重新加载")
	return protocol.SuccessMessage, nil
}
