package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog/report-dashboard/internal/api"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/infrastructure/config"
)

func TestOpen_MemoryStoreSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, &config.Config{StoreDriver: config.DriverMemory, Timezone: "UTC", Seed: 7}, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close(ctx)

	_, err = a.Store.Get(ctx, domain.CategoryTask.StorageKey())
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	records, err := a.Service.List(ctx, domain.CategoryTask, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, records)

	blob, err := a.Store.Get(ctx, domain.CategoryTask.StorageKey())
	require.NoError(t, err)
	assert.NotEmpty(t, blob)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: "sqlite", Timezone: "UTC"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestOpen_BadTimezone(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: config.DriverMemory, Timezone: "Nowhere/Else"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestRecordsEndpoint_UnknownDateRangeReturnsEverything(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, &config.Config{StoreDriver: config.DriverMemory, Timezone: "UTC", Seed: 7}, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close(ctx)

	reg := prometheus.NewRegistry()
	router := api.NewRouter(api.Deps{Service: a.Service, Logger: zerolog.Nop(), Registerer: reg, Gatherer: reg})

	total := func(target string) int {
		t.Helper()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body.Total
	}

	all := total("/v1/reports/task/records")
	assert.NotZero(t, all)
	assert.Equal(t, all, total("/v1/reports/task/records?date_range=allTime"))
}
