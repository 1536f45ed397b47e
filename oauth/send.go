package oauth

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// skewLogThreshold is the offset change worth logging.
const skewLogThreshold = 5 * time.Second

// Response is what a SendFunc got back. Header keys are lowercase.
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}

// SendFunc performs one signed HTTP exchange.
type SendFunc func(ctx context.Context, req *SignedRequest) (*Response, error)

// Send signs req and hands it to send. If the server answers 401 and its
// Date (or Last-Modified) header shows a clock offset other than the one
// used for signing, the offset is stored and the request is signed again
// and resent, once. The last response is returned as is.
func (s *Signer) Send(ctx context.Context, req *Request, tok Token, send SendFunc) (*Response, error) {
	clock := s.clock()

	used := clock.Offset()
	resp, err := s.signAndSend(ctx, req, tok, used, send)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusUnauthorized {
		return resp, nil
	}

	remote, ok := RemoteOffset(resp.Header, s.now())
	if !ok || remote == used {
		return resp, nil
	}
	if diff := remote - used; diff > skewLogThreshold || diff < -skewLogThreshold {
		slog.Info("oauth: clock offset adjusted",
			slog.Duration("offset", remote),
			slog.Duration("previous", used),
			slog.String("url", req.URL))
	}
	clock.Set(remote)

	return s.signAndSend(ctx, req, tok, clock.Offset(), send)
}

func (s *Signer) signAndSend(ctx context.Context, req *Request, tok Token, offset time.Duration, send SendFunc) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	signed, err := s.sign(req, tok, offset)
	if err != nil {
		return nil, err
	}
	return send(ctx, signed)
}
