package server

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/francoispqt/gojay"
	"github.com/valyala/fasthttp"
)

const contentTypeJSON = "application/json"

type stringArray []string

func (a stringArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range a {
		enc.String(v)
	}
}

func (a stringArray) IsNil() bool {
	return a == nil
}

// resultResponse is the body returned for a generated value
type resultResponse struct {
	generate.Result
}

func (r resultResponse) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("id", r.ID.String())
	enc.StringKey("kind", string(r.Kind))
	if r.Values != nil {
		enc.ArrayKey("values", stringArray(r.Values))
	} else {
		enc.StringKey("value", r.Value)
	}
	enc.Float64Key("entropy", r.Entropy)
}

func (r resultResponse) IsNil() bool {
	return false
}

type errorResponse struct {
	Error string
}

func (e errorResponse) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("error", e.Error)
}

func (e errorResponse) IsNil() bool {
	return e.Error == ""
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v gojay.MarshalerJSONObject) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)

	enc := gojay.BorrowEncoder(ctx)
	defer enc.Release()
	if err := enc.EncodeObject(v); err != nil {
		log.Error().Err(err).Bytes("uri", ctx.RequestURI()).Msg("failed to marshal response")
	}
}

func writeError(ctx *fasthttp.RequestCtx, err error) {
	log.Debug().Err(err).Bytes("uri", ctx.RequestURI()).Msg("rejected request")
	writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{Error: err.Error()})
}
