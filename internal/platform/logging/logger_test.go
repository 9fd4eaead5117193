package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	out := log.New(&buf, "", 0)

	ctx := WithRequestID(context.Background(), "rid-1")
	NewLogger(ctx).WithOutput(out).LogInfof("list", "count=%d", 3)
	assert.Equal(t, "[info] request_id=rid-1 operation=list count=3\n", buf.String())

	buf.Reset()
	NewLogger(context.Background()).WithOutput(out).LogError("submit", errors.New("boom"))
	assert.Equal(t, "[error] request_id=unknown operation=submit error=boom\n", buf.String())

	buf.Reset()
	NewLogger(ctx).WithOutput(out).LogWarn("submit", "slow")
	assert.Equal(t, "[warn] request_id=rid-1 operation=submit message=slow\n", buf.String())
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
