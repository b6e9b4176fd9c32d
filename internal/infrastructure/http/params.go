package httpserver

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// CoinParams are the query parameters shared by the stats endpoints.
type CoinParams struct {
	Coin *string `form:"coin,omitempty" json:"coin,omitempty"`
}

func (p CoinParams) CoinOrEmpty() string {
	if p.Coin == nil {
		return ""
	}
	return *p.Coin
}

// ServerInterface is implemented by Server and mounted by HandlerWithOptions.
type ServerInterface interface {
	// (GET /getLatestCryptoStats)
	GetLatestCryptoStats(w http.ResponseWriter, r *http.Request, params CoinParams)
	// (GET /getCryptoDeviation)
	GetCryptoDeviation(w http.ResponseWriter, r *http.Request, params CoinParams)
}

type ChiServerOptions struct {
	BaseRouter       chiRouter
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

type chiRouter interface {
	Get(pattern string, h http.HandlerFunc)
}

// HandlerWithOptions binds query parameters and mounts si on the base router.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) {
	onErr := options.ErrorHandlerFunc
	if onErr == nil {
		onErr = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	options.BaseRouter.Get("/getLatestCryptoStats", func(w http.ResponseWriter, r *http.Request) {
		params, err := bindCoinParams(r)
		if err != nil {
			onErr(w, r, err)
			return
		}
		si.GetLatestCryptoStats(w, r, params)
	})
	options.BaseRouter.Get("/getCryptoDeviation", func(w http.ResponseWriter, r *http.Request) {
		params, err := bindCoinParams(r)
		if err != nil {
			onErr(w, r, err)
			return
		}
		si.GetCryptoDeviation(w, r, params)
	})
}

func bindCoinParams(r *http.Request) (CoinParams, error) {
	var params CoinParams
	if err := runtime.BindQueryParameter("form", true, false, "coin", r.URL.Query(), &params.Coin); err != nil {
		return CoinParams{}, fmt.Errorf("invalid format for parameter coin: %w", err)
	}
	return params, nil
}
