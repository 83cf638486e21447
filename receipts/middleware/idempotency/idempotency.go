// Package idempotency makes tagged write endpoints safe to retry: the first
// request under a key runs and its response is replayed for any repeat, a
// concurrent repeat is refused, and a repeat with a different body is a
// conflict.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

// Header carries the client-chosen idempotency key.
const Header = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := hashPayload(req)
	cacheKey := Key{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Keyspace.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return runFirstRequest(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replayOrConflict(req, next, entry, bodyHash, key)
}

// runFirstRequest marks the key as in flight, runs the handler, and caches
// the outcome. A failed handler clears the key so the client can retry.
func runFirstRequest(req middleware.Request, next middleware.Next, cacheKey Key, bodyHash string) middleware.Response {
	if err := Keyspace.Set(req.Context(), cacheKey, Entry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"},
		}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
		return response
	}

	completed := Entry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return response
		}
		completed.Response = payloadBytes
	}
	if err := Keyspace.Set(req.Context(), cacheKey, completed); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}

	return response
}

// replayOrConflict resolves a repeated key: conflicting body is rejected, an
// in-flight original aborts the repeat, a completed original is replayed.
func replayOrConflict(req middleware.Request, next middleware.Next, entry Entry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}

	case statusCompleted:
		if len(entry.Response) > 0 {
			if responseType := req.Data().API.ResponseType; responseType != nil {
				responseValue := reflect.New(responseType.Elem()).Interface()
				if err := json.Unmarshal(entry.Response, responseValue); err == nil {
					rlog.Info("returning cached response", "key", key)
					return middleware.Response{Payload: responseValue}
				}
				rlog.Error("failed to unmarshal cached response", "key", key)
			}
		}
		// Corrupted cached response: fall through and process again.
		return next(req)

	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	if headers := req.Data().Headers; headers != nil {
		if v := strings.TrimSpace(headers.Get(Header)); v != "" {
			return v, nil
		}
	}
	return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
}

// hashPayload produces a stable digest of the request body for conflict
// detection. An unmarshalable payload hashes as empty, which disables the
// conflict check rather than failing the request.
func hashPayload(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(bodyBytes)
	return hex.EncodeToString(sum[:])
}

func clearEntry(ctx context.Context, cacheKey Key) {
	if _, err := Keyspace.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}
