package tunnel

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.ngrok.com/ngrok"
	"golang.ngrok.com/ngrok/config"
)

var ErrMissingAuthtoken = errors.New("NGROK_AUTH_TOKEN is not set, it is required to open the public tunnel")

// Open Start an ngrok HTTP endpoint. The returned tunnel is a net.Listener that
// receives the requests made to its public URL.
func Open(ctx context.Context, authtoken string) (ngrok.Tunnel, error) {
	if authtoken == "" {
		return nil, ErrMissingAuthtoken
	}

	tun, err := ngrok.Listen(ctx, config.HTTPEndpoint(), ngrok.WithAuthtoken(authtoken))
	if err != nil {
		return nil, fmt.Errorf("cannot open ngrok tunnel: %w", err)
	}
	log.Info(fmt.Sprintf("ngrok tunnel URL: %s", tun.URL()))
	return tun, nil
}
