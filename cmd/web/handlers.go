package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/addrkit/addrkit/cmd/web/akhttp"
	"github.com/addrkit/addrkit/cmd/web/akhttp/handlers"
	"github.com/addrkit/addrkit/cmd/web/services"
	"github.com/addrkit/addrkit/validator"
)

const (
	failedRequestError  = "Request failed, unable to parse request body. Expected JSON."
	failedResponseError = "Generating response failed."
	lookupTimeoutError  = "Lookup did not complete in time."
)

func NewCheckHandler(logger logrus.FieldLogger, svc *services.CheckSvc, hash addressHasher, maxBodySize int64) http.HandlerFunc {

	logger = logger.WithField("handler", "check")
	return func(w http.ResponseWriter, r *http.Request) {
		var req akhttp.CheckRequest

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		defer deferClose(r.Body, logger)

		body, err := akhttp.GetBodyFromHTTPRequest(r, maxBodySize)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"error":          err,
				"content_length": r.ContentLength,
			}).Error("Error handling request")

			w.WriteHeader(http.StatusBadRequest)

			// err is expected to be safe to expose to the client
			writeJSONResponse(logger, w, &akhttp.CheckResponse{Error: err.Error()})
			return
		}

		if err := json.Unmarshal(body, &req); err != nil {
			logger.WithError(err).Error("Error handling request body")

			w.WriteHeader(http.StatusBadRequest)
			writeJSONResponse(logger, w, &akhttp.CheckResponse{Error: failedRequestError})
			return
		}

		result, err := svc.HandleCheckRequest(r.Context(), req.Email)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"email": hash(req.Email),
				"error": err,
			}).Warn("Check aborted")

			if errors.Is(err, validator.ErrDNSLookupTimeout) {
				w.WriteHeader(http.StatusGatewayTimeout)
				writeJSONResponse(logger, w, &akhttp.CheckResponse{Error: lookupTimeoutError})
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			writeJSONResponse(logger, w, &akhttp.CheckResponse{Error: failedResponseError})
			return
		}

		response := akhttp.CheckResponse{
			Valid: result.Valid,
			Code:  result.Code,
		}

		if result.MX != nil {
			response.Records = result.MX.Records
			response.Cached = result.MX.Cached
		}

		if result.Disposable != nil {
			response.Disposable = result.Disposable.Disposable
		}

		logger.WithFields(logrus.Fields{
			"email": hash(req.Email),
			"valid": result.Valid,
			"code":  result.Code,
		}).Debug("Done performing check")

		w.WriteHeader(http.StatusOK)
		writeJSONResponse(logger, w, &response)
	}
}

func NewCacheStatsHandler(logger logrus.FieldLogger, svc *services.CacheSvc) http.HandlerFunc {

	logger = logger.WithField("handler", "cache stats")
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		stats := svc.Stats()

		response, err := json.Marshal(stats)
		if err != nil {
			logger.WithError(err).Error("Failed to marshal the response")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(response)
	}
}

func NewCacheFlushHandler(logger logrus.FieldLogger, svc *services.CacheSvc) http.HandlerFunc {

	logger = logger.WithField("handler", "cache flush")
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		removed := svc.Flush()

		w.WriteHeader(http.StatusOK)
		writeJSONResponse(logger, w, &akhttp.CacheModifyResponse{Removed: removed})
	}
}

func NewCacheDeleteHandler(logger logrus.FieldLogger, svc *services.CacheSvc, maxBodySize int64) http.HandlerFunc {

	logger = logger.WithField("handler", "cache delete")
	return func(w http.ResponseWriter, r *http.Request) {
		var req akhttp.CacheDeleteRequest

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		defer deferClose(r.Body, logger)

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		body, err := akhttp.GetBodyFromHTTPRequest(r, maxBodySize)
		if err != nil {
			logger.WithError(err).Error("Error handling request")

			w.WriteHeader(http.StatusBadRequest)
			writeJSONResponse(logger, w, &akhttp.CacheModifyResponse{Error: err.Error()})
			return
		}

		if err := json.Unmarshal(body, &req); err != nil || req.Domain == "" {
			logger.WithError(err).Error("Error handling request body")

			w.WriteHeader(http.StatusBadRequest)
			writeJSONResponse(logger, w, &akhttp.CacheModifyResponse{Error: failedRequestError})
			return
		}

		var removed int
		if svc.Delete(req.Domain) {
			removed = 1
		}

		w.WriteHeader(http.StatusOK)
		writeJSONResponse(logger, w, &akhttp.CacheModifyResponse{Removed: removed})
	}
}

func NewHealthHandler(logger logrus.FieldLogger) http.HandlerFunc {

	logger = logger.WithField("handler", "health")
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		w.Header().Set("content-type", "text/plain")
		w.WriteHeader(http.StatusOK)

		_, err := w.Write([]byte("OK"))
		if err != nil {
			logger.WithError(err).Error("failed to write in health handler")
		}
	}
}

func writeJSONResponse(logger logrus.FieldLogger, w http.ResponseWriter, response akhttp.Response) {
	response.PrepareResponse()

	value, err := json.Marshal(response)
	if err != nil {
		logger.WithError(err).Error("Unable to marshal response")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(value)
	if err != nil {
		logger.WithError(err).Error("Unable to write response")
	}
}
