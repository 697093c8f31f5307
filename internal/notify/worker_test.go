package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/waste_complaint_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWorker(nil, logger, cfg)
}

func TestDeliver_Success(t *testing.T) {
	// Подготовка
	payload := `{"type":"complaint.created","complaint_id":7}`
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Действие
	worker.deliver(context.Background(), payload)

	// Проверки
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDeliver_SignsPayloadWhenSecretConfigured(t *testing.T) {
	// Подготовка
	payload := `{"type":"complaint.deleted","complaint_id":5}`
	secret := "test-secret"
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Действие
	worker.deliver(context.Background(), payload)

	// Проверки: подпись HMAC-SHA256 от тела запроса
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, expected, gotSignature)
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	// Подготовка
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Первые две попытки проваливаются
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Действие
	worker.deliver(context.Background(), `{"type":"complaint.created"}`)

	// Проверки
	assert.Equal(t, int32(3), attempts.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	// Подготовка
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Действие: доставка не паникует и не зависает после исчерпания попыток
	worker.deliver(context.Background(), `{"type":"complaint.created"}`)

	// Проверки
	assert.Equal(t, int32(3), attempts.Load())
}

func TestDeliver_SkipsWhenURLNotConfigured(t *testing.T) {
	// Подготовка
	var hit atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit.Store(true)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        "", // Доставка отключена
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Действие
	worker.deliver(context.Background(), `{"type":"complaint.created"}`)

	// Проверки
	assert.False(t, hit.Load())
}

func TestSend_RejectsNon2xxStatus(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:     server.URL,
		WebhookTimeout: time.Second,
	})

	// Действие
	err := worker.send(context.Background(), `{}`)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "status code 502")
}
