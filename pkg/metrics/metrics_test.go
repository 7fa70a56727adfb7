package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics_Idempotent 重复初始化不应panic（promauto重复注册会panic）
func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Fatal("期望HTTPRequestsTotal已初始化")
	}
}

// TestCounterIncrement 验证计数器递增
func TestCounterIncrement(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(EventRegistrationsTotal.WithLabelValues("success"))
	EventRegistrationsTotal.WithLabelValues("success").Inc()
	after := testutil.ToFloat64(EventRegistrationsTotal.WithLabelValues("success"))

	if after != before+1 {
		t.Errorf("期望计数器递增1，实际从%v变为%v", before, after)
	}
}
