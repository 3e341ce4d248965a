// Command ctrader-probe connects to a cTrader Open API proxy, authenticates
// the application and a trading account, and streams spot quotes for the
// requested symbols. It doubles as the OAuth bootstrap: -auth-url prints the
// consent URL, -exchange-code trades the redirect code for tokens.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/paxelcool/ctrader-open-api-async/auth"
	"github.com/paxelcool/ctrader-open-api-async/client"
	"github.com/paxelcool/ctrader-open-api-async/config"
	buildversion "github.com/paxelcool/ctrader-open-api-async/internal/version"
	"github.com/paxelcool/ctrader-open-api-async/observability"
	"github.com/paxelcool/ctrader-open-api-async/observability/prom"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
	"github.com/paxelcool/ctrader-open-api-async/session"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type ready struct {
	Version    string  `json:"version"`
	Commit     string  `json:"commit"`
	Date       string  `json:"date"`
	Host       string  `json:"host"`
	Transport  string  `json:"transport"`
	AccountID  int64   `json:"account_id"`
	Symbols    []int64 `json:"symbols,omitempty"`
	MetricsURL string  `json:"metrics_url,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("ctrader-probe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := false
	authURL := false
	exchangeCode := ""
	symbolsCSV := ""
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&authURL, "auth-url", false, "print the OAuth consent URL and exit")
	fs.StringVar(&exchangeCode, "exchange-code", "", "exchange an OAuth redirect code for tokens and exit")
	fs.StringVar(&symbolsCSV, "symbols", "EURUSD", "comma-separated symbol names to stream")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, "ctrader-probe "+buildversion.String(version, commit, date))
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := newLogger(stderr, cfg.LogLevel)

	clientID, clientSecret := cfg.ClientID, cfg.ClientSecret
	if cfg.CredentialsFile != "" {
		creds, err := auth.LoadCredentials(cfg.CredentialsFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		clientID, clientSecret = creds.ClientID, creds.ClientSecret
		if cfg.HostType == "demo" && creds.HostType != "" {
			cfg.HostType = creds.HostType
		}
	}
	if clientID == "" || clientSecret == "" {
		fmt.Fprintln(stderr, "missing client credentials: set CTRADER_CLIENT_ID and CTRADER_CLIENT_SECRET, or CTRADER_CREDENTIALS_FILE")
		return 2
	}

	oauth := auth.NewOAuth(clientID, clientSecret, cfg.RedirectURI, auth.WithOAuthLogger(log))
	store := auth.NewStore(cfg.TokenFile)

	if authURL {
		fmt.Fprintln(stdout, oauth.AuthURI(""))
		return 0
	}
	if exchangeCode != "" {
		tok, err := oauth.ExchangeCode(context.Background(), exchangeCode)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if err := store.Save(tok); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		log.Info().Str("token_file", cfg.TokenFile).Msg("tokens stored")
		return 0
	}

	tokens, err := auth.NewManager(oauth, store, auth.WithManagerLogger(log))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tokens.EnsureValid(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	clientOpts := []client.Option{
		client.WithTransport(client.Transport(cfg.Transport)),
		client.WithConnectTimeout(cfg.ConnectTimeout),
		client.WithResponseTimeout(cfg.ResponseTimeout),
		client.WithHeartbeatIdle(cfg.HeartbeatIdle),
		client.WithMessagesPerSecond(cfg.MessagesPerSecond),
	}
	if cfg.Port != 0 {
		clientOpts = append(clientOpts, client.WithPort(cfg.Port))
	}

	// The client keeps the atomic observer for its lifetime; the prometheus
	// delegate is swapped in only when a metrics listener is configured.
	obs := observability.NewAtomicClientObserver()
	clientOpts = append(clientOpts, client.WithObserver(obs))

	var metricsURL string
	if cfg.MetricsAddr != "" {
		reg := prom.NewRegistry()
		obs.Set(prom.NewClientObserver(reg))

		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", prom.Handler(reg))
		srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = srv.Shutdown(shutdownCtx)
			shutdownCancel()
		}()
		metricsURL = "http://" + ln.Addr().String() + "/metrics"
	}

	lost := make(chan struct{})
	sess, err := session.New(cfg.HostType, clientID, clientSecret,
		session.WithLogger(log),
		session.WithOnStateChange(func(from, to session.State) {
			if to == session.StateDisconnected && from != session.StateClosing {
				close(lost)
			}
		}),
		session.WithOnEvent(func(msg openapi.Message, env *openapi.ProtoMessage) {
			logEvent(log, msg, env)
		}),
		session.WithClientOptions(clientOpts...),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	if err := sess.Connect(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	accountID := cfg.AccountID
	if accountID == 0 {
		accounts, err := sess.AccountsByAccessToken(ctx, tokens.AccessToken())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if len(accounts) == 0 {
			fmt.Fprintln(stderr, "access token grants no trading accounts")
			return 1
		}
		accountID = accounts[0].CtidTraderAccountID
		log.Info().Int64("account_id", accountID).Msg("using first granted account")
	}
	if err := sess.AuthenticateAccount(ctx, accountID, tokens.AccessToken()); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if _, err := sess.SymbolsList(ctx, false); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	var symbolIDs []int64
	for _, name := range strings.Split(symbolsCSV, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sym := sess.SymbolByName(name)
		if sym == nil {
			log.Warn().Str("symbol", name).Msg("unknown symbol, skipping")
			continue
		}
		symbolIDs = append(symbolIDs, sym.SymbolID)
	}
	if len(symbolIDs) > 0 {
		if err := sess.SubscribeSpots(ctx, symbolIDs...); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	_ = json.NewEncoder(stdout).Encode(ready{
		Version:    version,
		Commit:     commit,
		Date:       date,
		Host:       cfg.HostType,
		Transport:  cfg.Transport,
		AccountID:  accountID,
		Symbols:    symbolIDs,
		MetricsURL: metricsURL,
	})

	select {
	case <-ctx.Done():
		return 0
	case <-lost:
		fmt.Fprintln(stderr, "connection lost")
		return 1
	}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func logEvent(log zerolog.Logger, msg openapi.Message, env *openapi.ProtoMessage) {
	switch ev := msg.(type) {
	case *openapi.SpotEvent:
		e := log.Info().Int64("symbol_id", ev.SymbolID)
		if ev.Bid != nil {
			e = e.Uint64("bid", *ev.Bid)
		}
		if ev.Ask != nil {
			e = e.Uint64("ask", *ev.Ask)
		}
		e.Msg("spot")
	case *openapi.ExecutionEvent:
		log.Info().
			Int("execution_type", int(ev.ExecutionType)).
			Str("error_code", ev.ErrorCode).
			Msg("execution")
	case *openapi.AccountsTokenInvalidatedEvent:
		log.Warn().Msg("access token invalidated by server")
	case nil:
		log.Debug().Uint32("payload_type", uint32(env.PayloadType)).Msg("unknown event")
	default:
		log.Debug().Uint32("payload_type", uint32(env.PayloadType)).Msg("event")
	}
}
