package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lonng/nex"
	"github.com/lonng/roundscore/internal/web/api"
	"github.com/lonng/roundscore/pkg/algoutil"
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/protocol"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "http")

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func encodeError(err error) interface{} {
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: err.Error(),
	}
}

func startupService() http.Handler {
	mux := http.NewServeMux()

	nex.Before(logRequest)
	nex.SetErrorEncoder(encodeError)

	mux.Handle("/v1/round/", api.MakeRoundService())

	// GM系统命令
	mux.Handle("/v1/gm/reload", nex.Handler(reloadHandler).Before(authFilter)) // 重新加载结算配置

	mux.Handle("/ping", nex.Handler(pongHandler))

	return algoutil.AccessControl(algoutil.OptionControl(mux))
}

func Startup() {
	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
	)

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		// http service
		mux := startupService()
		if enableSSL {
			log.Fatal(http.ListenAndServeTLS(addr, cert, key, mux))
		} else {
			log.Fatal(http.ListenAndServe(addr, mux))
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	select {
	case s := <-sg:
		log.Infof("got signal: %s", s.String())
	}
}
