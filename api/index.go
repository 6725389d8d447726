// Package handler exposes the booking API as a single serverless function. The router and its
// connections are built on the first invocation and reused while the instance stays warm.
package handler

import (
	"net/http"
	"sync"

	"hotelbook/config"
	"hotelbook/di"
	"hotelbook/shared/logger"
	transportHTTP "hotelbook/transport/http"
)

var (
	once    sync.Once
	service *transportHTTP.HTTP
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
