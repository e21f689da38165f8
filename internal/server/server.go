package server

import (
	"context"
	"time"

	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Server serves generated values over HTTP
type Server struct {
	g      *random.Generator
	router *router.Router
	ctx    context.Context
}

type Option func(s *Server)

// WithGenerator sets the generator used by every route. By default random.Default() is used
func WithGenerator(g *random.Generator) Option {
	return func(s *Server) {
		if g != nil {
			s.g = g
		}
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		g:   random.Default(),
		ctx: context.Background(),
	}
	for _, v := range opts {
		v(s)
	}

	r := router.New()
	r.GET("/number", s.handle(generate.KindNumber, func(_ *fasthttp.RequestCtx, p *params) []generate.Option {
		return []generate.Option{generate.Range(p.requiredInt("min"), p.requiredInt("max"))}
	}))
	r.GET("/string", s.handle(generate.KindString, func(_ *fasthttp.RequestCtx, p *params) []generate.Option {
		return []generate.Option{
			generate.Classes(p.classes()),
			generate.RequireAll(p.bool("require_all", false)),
		}
	}))
	r.GET("/otp", s.handle(generate.KindOTP, nil))
	r.GET("/letters", s.handle(generate.KindLetters, nil))
	r.GET("/token", s.handle(generate.KindToken, nil))
	r.GET("/password", s.handle(generate.KindPassword, func(_ *fasthttp.RequestCtx, p *params) []generate.Option {
		return []generate.Option{generate.RequireAll(p.bool("require_all", false))}
	}))
	r.GET("/dashed", s.handle(generate.KindDashed, func(_ *fasthttp.RequestCtx, p *params) []generate.Option {
		return []generate.Option{
			generate.Delimiter(p.string("delimiter", random.DefaultDelimiter)),
			generate.ChunkLength(p.int("chunk", random.DefaultChunkLength)),
			generate.MixedCase(p.bool("mixed_case", true)),
		}
	}))
	r.POST("/shuffle", s.handle(generate.KindShuffle, items))
	r.POST("/pick", s.handle(generate.KindPick, func(ctx *fasthttp.RequestCtx, p *params) []generate.Option {
		return append(items(ctx, p), generate.PickCount(p.int("count", 1)))
	}))
	r.POST("/single", s.handle(generate.KindSingle, items))
	s.router = r

	return s
}

func items(ctx *fasthttp.RequestCtx, _ *params) []generate.Option {
	return []generate.Option{generate.Items(bodyItems(ctx.PostBody()))}
}

// handle returns the handler generating a single value of kind k. parse maps the request onto
// generation options, and may be nil when the kind only takes a length
func (s *Server) handle(k generate.Kind, parse func(ctx *fasthttp.RequestCtx, p *params) []generate.Option) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		p := newParams(ctx.QueryArgs())
		opts := []generate.Option{generate.WithGenerator(s.g)}
		if p.has("length") {
			length := p.int("length", 0)
			// set directly so negative lengths reach validation instead of falling back to the default
			opts = append(opts, func(o *generate.Options) { o.Length = length })
		}
		if parse != nil {
			opts = append(opts, parse(ctx, p)...)
		}
		if err := p.err(); err != nil {
			writeError(ctx, err)
			return
		}

		o := generate.NewOptions(k, opts...)
		if err := o.Validate(); err != nil {
			writeError(ctx, err)
			return
		}
		res, err := generate.Generate(s.ctx, o)
		if err != nil {
			writeError(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, resultResponse{res[0]})
	}
}

// Handler returns the request handler serving every route
func (s *Server) Handler() fasthttp.RequestHandler {
	next := s.router.Handler
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		log.Debug().
			Bytes("method", ctx.Method()).
			Bytes("uri", ctx.RequestURI()).
			Int("status", ctx.Response.StatusCode()).
			Dur("took", time.Since(start)).
			Msg("handled request")
	}
}

// ListenAndServe serves on addr until the context is cancelled, at which point the server is shut down
// gracefully and nil is returned
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.ctx = ctx
	srv := &fasthttp.Server{
		Handler: s.Handler(),
		Name:    "random",
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe(addr)
	}()
	log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		return srv.Shutdown()
	}
}
