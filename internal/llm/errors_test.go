package llm

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"unauthorized", &APIError{StatusCode: 401}, KindAuth},
		{"forbidden", &APIError{StatusCode: 403}, KindAuth},
		{"rate limited", &APIError{StatusCode: 429}, KindRateLimit},
		{"server error", &APIError{StatusCode: 500}, KindUnknown},
		{"wrapped auth", fmt.Errorf("send: %w", &APIError{StatusCode: 401}), KindAuth},
		{"dns not found", &net.DNSError{Err: "no such host", Name: "api.invalid", IsNotFound: true}, KindNetwork},
		{"connection refused", &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, KindNetwork},
		{"bare refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), KindNetwork},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "rate_limit", KindRateLimit.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 429, Body: "slow down"}
	assert.Equal(t, "API error (status 429): slow down", err.Error())
}
