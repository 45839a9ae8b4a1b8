package commerce

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitClientLogsThroughZerolog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Set("Content-Type", "application/json")
		_, _ = wrt.Write([]byte(`{"stores":[]}`))
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	client := NewClient(srv.URL, WithAPIKey("sk_test"), WithLogger(zerolog.New(&buf)))

	_, err := client.ListStores(context.TODO())
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Truef(t, bytes.HasPrefix(line, []byte("{")), "should log json, got %s", line)
	}
	assert.Contains(t, buf.String(), `"level":"warn"`, "should route resty basic auth warning to zerolog")
	assert.Contains(t, buf.String(), "Basic Auth")
}

func TestUnitRestyLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := restyLogger{logger: zerolog.New(&buf).Level(zerolog.WarnLevel)}

	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d\n", 2)
	l.Errorf("failed %s", "request")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown 2"`)
	assert.Contains(t, buf.String(), `"message":"failed request"`)
}
