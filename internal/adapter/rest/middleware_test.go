package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

func TestTrace_SpanNamedByRoutePattern(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	repo := &stubListingRepo{
		findByID: func(_ context.Context, id int64) (*domain.Listing, error) {
			return &domain.Listing{ID: id, Type: domain.TypeLand, Land: &domain.LandDetails{}}, nil
		},
		increment: func(context.Context, int64) error { return nil },
	}
	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings/42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The span carries the route pattern, not the concrete listing id.
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/listings/{id}", spans[0].Name())
}
