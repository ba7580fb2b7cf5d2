package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteServiceError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockEventManager(ctrl)
	m.EXPECT().Get(gomock.Any(), "e1").Return(nil, errors.New("connection reset"))

	h := middlewares.LoggingMiddleware(logger.Log)(eventRouter(m))
	w := serve(h, http.MethodGet, "/events/e1", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, w.Header().Get("X-Request-ID"), fields["request_id"])
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "Event", fields["entity"])
}
